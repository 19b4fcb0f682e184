package hosttest

import (
	"encoding/json"
	"reflect"

	"github.com/momentohq/functions/errors"
	"github.com/momentohq/functions/hostabi"
)

// Provider is the stub credentials handle.
type Provider struct {
	Credentials    hostabi.AWSCredentials
	ProviderRegion string
}

func (p *Provider) Region() string { return p.ProviderRegion }

// AWS implements the auth, S3, DynamoDB, Lambda and Secrets Manager
// capabilities over maps.
type AWS struct {
	Providers []*Provider

	S3Objects map[string][]byte // "bucket/key"

	Tables map[string][]map[string]any // table name to stored items

	LambdaResponses []hostabi.LambdaInvokeResponse
	Invocations     []hostabi.LambdaInvokeRequest

	Secrets        map[string][]byte
	SecretRequests []hostabi.SecretValueRequest
}

func NewAWS() *AWS {
	return &AWS{
		S3Objects: map[string][]byte{},
		Tables:    map[string][]map[string]any{},
		Secrets:   map[string][]byte{},
	}
}

func (a *AWS) Provider(credentials hostabi.AWSCredentials, region string) (hostabi.AWSCredentialsProvider, error) {
	p := &Provider{Credentials: credentials, ProviderRegion: region}
	a.Providers = append(a.Providers, p)
	return p, nil
}

func (a *AWS) Put(_ hostabi.AWSCredentialsProvider, req hostabi.S3PutRequest) error {
	a.S3Objects[req.Bucket+"/"+req.Key] = req.Body
	return nil
}

func (a *AWS) Get(_ hostabi.AWSCredentialsProvider, req hostabi.S3GetRequest) (hostabi.Payload, bool, error) {
	body, found := a.S3Objects[req.Bucket+"/"+req.Key]
	if !found {
		return hostabi.Payload{}, false, nil
	}
	return hostabi.InlinePayload(body), true, nil
}

func (a *AWS) PutItem(_ hostabi.AWSCredentialsProvider, req hostabi.DDBPutItemRequest) error {
	var item map[string]any
	if err := json.Unmarshal(req.ItemJSON, &item); err != nil {
		return errors.HostCall("aws_ddb.put_item", errors.KindInvalidArgument, err.Error())
	}
	a.Tables[req.TableName] = append(a.Tables[req.TableName], item)
	return nil
}

func (a *AWS) GetItem(_ hostabi.AWSCredentialsProvider, req hostabi.DDBGetItemRequest) ([]byte, bool, error) {
	var key map[string]any
	if err := json.Unmarshal(req.KeyJSON, &key); err != nil {
		return nil, false, errors.HostCall("aws_ddb.get_item", errors.KindInvalidArgument, err.Error())
	}
	for _, item := range a.Tables[req.TableName] {
		if itemMatchesKey(item, key) {
			encoded, err := json.Marshal(item)
			if err != nil {
				return nil, false, errors.HostCall("aws_ddb.get_item", errors.KindInternal, err.Error())
			}
			return encoded, true, nil
		}
	}
	return nil, false, nil
}

func itemMatchesKey(item, key map[string]any) bool {
	for attr, want := range key {
		if !reflect.DeepEqual(item[attr], want) {
			return false
		}
	}
	return true
}

func (a *AWS) Invoke(_ hostabi.AWSCredentialsProvider, req hostabi.LambdaInvokeRequest) (hostabi.LambdaInvokeResponse, error) {
	a.Invocations = append(a.Invocations, req)
	if len(a.LambdaResponses) == 0 {
		return hostabi.LambdaInvokeResponse{StatusCode: 200}, nil
	}
	resp := a.LambdaResponses[0]
	a.LambdaResponses = a.LambdaResponses[1:]
	return resp, nil
}

func (a *AWS) GetSecretValue(_ hostabi.AWSCredentialsProvider, req hostabi.SecretValueRequest) (hostabi.Payload, error) {
	a.SecretRequests = append(a.SecretRequests, req)
	value, found := a.Secrets[req.SecretID]
	if !found {
		return hostabi.Payload{}, errors.NotFound("aws_secrets.get_secret_value", "secret "+req.SecretID)
	}
	return hostabi.InlinePayload(value), nil
}
