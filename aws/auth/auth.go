// Package auth configures AWS credentials for the other aws packages.
// Calls ride the host's always-hot AWS channel, so a function that has not
// run in days still gets a warm connection on its next invocation.
package auth

import (
	"os"

	"github.com/momentohq/functions/hostabi"
)

// Credentials are hardcoded IAM user credentials. Use a narrowly scoped
// user: the deployed artifact carries these values.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// EnvironmentCredentials reads AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY
// with an optional variable-name prefix. Unset variables come back as
// "UNSET", which AWS will reject loudly rather than silently.
func EnvironmentCredentials(prefix string) Credentials {
	return Credentials{
		AccessKeyID:     envOr(prefix+"AWS_ACCESS_KEY_ID", "UNSET"),
		SecretAccessKey: envOr(prefix+"AWS_SECRET_ACCESS_KEY", "UNSET"),
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// CredentialsProvider is a configured region + credentials pair, held as a
// host resource and shared by the aws service clients.
type CredentialsProvider struct {
	resource hostabi.AWSCredentialsProvider
}

// NewCredentialsProvider configures credentials for a region.
func NewCredentialsProvider(region string, credentials Credentials) (*CredentialsProvider, error) {
	resource, err := hostabi.AWSAuthAPI().Provider(hostabi.AWSCredentials{
		AccessKeyID:     credentials.AccessKeyID,
		SecretAccessKey: credentials.SecretAccessKey,
	}, region)
	if err != nil {
		return nil, err
	}
	return &CredentialsProvider{resource: resource}, nil
}

// Region reports the region this provider was configured for.
func (p *CredentialsProvider) Region() string {
	return p.resource.Region()
}

// Resource exposes the host handle for the aws service clients.
func (p *CredentialsProvider) Resource() hostabi.AWSCredentialsProvider {
	return p.resource
}
