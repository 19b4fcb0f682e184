// Package secretsmanager reads secret values from AWS Secrets Manager
// through the host's AWS channel. An optional caching mode stores fetched
// secrets in the surrounding cache, keeping hot functions away from the
// Secrets Manager rate limits.
package secretsmanager

import (
	"time"

	"go.uber.org/zap"

	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/cache"
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Request addresses one secret. VersionID and VersionStage are optional;
// both empty means the current version.
type Request struct {
	SecretID     string
	VersionID    string
	VersionStage string
}

// Client reads secrets with one configured credentials provider.
type Client struct {
	provider hostabi.AWSCredentialsProvider
	cacheTTL time.Duration
}

// NewClient builds a client that always fetches from Secrets Manager.
func NewClient(provider *auth.CredentialsProvider) *Client {
	return &Client{provider: provider.Resource()}
}

// NewCachingClient builds a client that stores fetched secrets in the
// surrounding cache under the secret ID, serving repeat reads from there
// until the TTL expires.
func NewCachingClient(provider *auth.CredentialsProvider, cacheTTL time.Duration) *Client {
	return &Client{provider: provider.Resource(), cacheTTL: cacheTTL}
}

// GetSecretValue fetches the secret and decodes it with T's codec.
func GetSecretValue[T any, P interface {
	*T
	payload.Extractor
}](c *Client, req Request) (T, error) {
	var zero T

	if c.cacheTTL > 0 {
		cached, found, err := cache.Get[payload.Bytes](req.SecretID)
		if err == nil && found {
			return payload.Extract[T, P](payload.FromBytes(cached))
		}
		if err != nil {
			Logger().Debug("secret cache read failed, falling back to secrets manager", zap.Error(err))
		}
	}

	secret, err := hostabi.SecretsManagerAPI().GetSecretValue(c.provider, hostabi.SecretValueRequest{
		SecretID:     req.SecretID,
		VersionID:    req.VersionID,
		VersionStage: req.VersionStage,
	})
	if err != nil {
		return zero, err
	}
	secretBytes := payload.FromHost(secret).IntoBytes()

	if c.cacheTTL > 0 {
		if err := cache.Set(req.SecretID, payload.Bytes(secretBytes), c.cacheTTL); err != nil {
			// The secret was retrieved; a failed cache write only costs
			// the next invocation a refetch.
			Logger().Debug("failed to cache secret", zap.Error(err))
		}
	}

	return payload.Extract[T, P](payload.FromBytes(secretBytes))
}
