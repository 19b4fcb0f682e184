// Package ddb is the DynamoDB data plane over the host's AWS channel.
// Items travel in DynamoDB's JSON wire shape; write type bindings mapping
// your structs to and from Item rather than passing raw items around.
package ddb

import (
	"encoding/json"

	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/errors"
	"github.com/momentohq/functions/hostabi"
)

// Client talks to DynamoDB with one configured credentials provider.
type Client struct {
	provider hostabi.AWSCredentialsProvider
}

// NewClient builds a client over the provider.
func NewClient(provider *auth.CredentialsProvider) *Client {
	return &Client{provider: provider.Resource()}
}

// GetItem fetches one item by key with eventual consistency. found is
// false when no item matches.
func (c *Client) GetItem(tableName string, key Item) (Item, bool, error) {
	return c.getItem(tableName, key, false)
}

// GetItemConsistent is GetItem with a strongly consistent read.
func (c *Client) GetItemConsistent(tableName string, key Item) (Item, bool, error) {
	return c.getItem(tableName, key, true)
}

func (c *Client) getItem(tableName string, key Item, consistent bool) (Item, bool, error) {
	keyJSON, err := json.Marshal(key)
	if err != nil {
		return nil, false, errors.Wrap(errors.PhaseEncode, errors.KindInvalidArgument, err, "failed to serialize key as json")
	}
	itemJSON, found, err := hostabi.DDBAPI().GetItem(c.provider, hostabi.DDBGetItemRequest{
		TableName:      tableName,
		KeyJSON:        keyJSON,
		ConsistentRead: consistent,
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	var item Item
	if err := json.Unmarshal(itemJSON, &item); err != nil {
		return nil, false, errors.MalformedReply("aws_ddb.get_item", "failed to deserialize host json as item: "+err.Error())
	}
	return item, true, nil
}

// PutItem stores one item.
func (c *Client) PutItem(tableName string, item Item) error {
	itemJSON, err := json.Marshal(item)
	if err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindInvalidArgument, err, "failed to serialize item as json")
	}
	return hostabi.DDBAPI().PutItem(c.provider, hostabi.DDBPutItemRequest{
		TableName: tableName,
		ItemJSON:  itemJSON,
	})
}
