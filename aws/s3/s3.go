// Package s3 reads and writes S3 objects through the host's AWS channel.
package s3

import (
	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Client talks to S3 with one configured credentials provider.
type Client struct {
	provider hostabi.AWSCredentialsProvider
}

// NewClient builds a client over the provider.
func NewClient(provider *auth.CredentialsProvider) *Client {
	return &Client{provider: provider.Resource()}
}

// Put stores the encoded body as an object.
func (c *Client) Put(bucket, key string, body payload.Encoder) error {
	encoded, err := body.EncodePayload()
	if err != nil {
		return err
	}
	return hostabi.S3API().Put(c.provider, hostabi.S3PutRequest{
		Bucket: bucket,
		Key:    key,
		Body:   encoded.IntoBytes(),
	})
}

// Get fetches an object and extracts it with T's codec. found is false
// when the object does not exist. Large bodies stay host-resident until
// the codec consumes them.
func Get[T any, P interface {
	*T
	payload.Extractor
}](c *Client, bucket, key string) (T, bool, error) {
	var zero T
	body, found, err := hostabi.S3API().Get(c.provider, hostabi.S3GetRequest{Bucket: bucket, Key: key})
	if err != nil {
		return zero, false, err
	}
	if !found {
		return zero, false, nil
	}
	value, err := payload.Extract[T, P](payload.FromHost(body))
	if err != nil {
		return zero, false, err
	}
	return value, true, nil
}
