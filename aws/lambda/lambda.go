// Package lambda invokes AWS Lambda functions synchronously through the
// host's AWS channel.
package lambda

import (
	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/errors"
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Client invokes functions with one configured credentials provider.
type Client struct {
	provider hostabi.AWSCredentialsProvider
}

// NewClient builds a client over the provider.
func NewClient(provider *auth.CredentialsProvider) *Client {
	return &Client{provider: provider.Resource()}
}

// InvokeResponse is the function's reply. The payload is taken at most
// once, through TakePayload or Extract.
type InvokeResponse struct {
	statusCode int32
	payload    []byte
	hasPayload bool
}

// StatusCode reports the Lambda invocation status code.
func (r *InvokeResponse) StatusCode() int32 {
	return r.statusCode
}

// TakePayload consumes the response payload. ok is false when the
// function returned no payload, or it was already taken.
func (r *InvokeResponse) TakePayload() ([]byte, bool) {
	if !r.hasPayload {
		return nil, false
	}
	p := r.payload
	r.payload = nil
	r.hasPayload = false
	return p, true
}

// Extract consumes the response payload and decodes it with T's codec.
func Extract[T any, P interface {
	*T
	payload.Extractor
}](r *InvokeResponse) (T, error) {
	var zero T
	body, ok := r.TakePayload()
	if !ok {
		return zero, errors.MalformedReply("aws_lambda.invoke", "response has no payload")
	}
	return payload.Extract[T, P](payload.FromBytes(body))
}

// Invoke calls the named function with the encoded payload and waits for
// its reply.
func (c *Client) Invoke(functionName string, request payload.Encoder) (*InvokeResponse, error) {
	return c.invoke(functionName, "", request)
}

// InvokeQualified is Invoke against a specific version or alias.
func (c *Client) InvokeQualified(functionName, qualifier string, request payload.Encoder) (*InvokeResponse, error) {
	return c.invoke(functionName, qualifier, request)
}

func (c *Client) invoke(functionName, qualifier string, request payload.Encoder) (*InvokeResponse, error) {
	encoded, err := request.EncodePayload()
	if err != nil {
		return nil, err
	}
	output, err := hostabi.LambdaAPI().Invoke(c.provider, hostabi.LambdaInvokeRequest{
		FunctionName: functionName,
		Qualifier:    qualifier,
		Payload:      encoded.IntoBytes(),
	})
	if err != nil {
		return nil, err
	}
	return &InvokeResponse{
		statusCode: output.StatusCode,
		payload:    output.Payload,
		hasPayload: output.HasPayload,
	}, nil
}
