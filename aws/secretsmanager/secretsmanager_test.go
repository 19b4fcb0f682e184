package secretsmanager

import (
	"testing"
	"time"

	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/hosttest"
	"github.com/momentohq/functions/payload"
)

func testHost(t *testing.T) (*auth.CredentialsProvider, *hosttest.Host) {
	t.Helper()
	host := hosttest.New()
	host.Bind()
	provider, err := auth.NewCredentialsProvider("us-east-1", auth.Credentials{AccessKeyID: "k", SecretAccessKey: "s"})
	if err != nil {
		t.Fatalf("NewCredentialsProvider: %v", err)
	}
	return provider, host
}

func TestGetSecretValue(t *testing.T) {
	provider, host := testHost(t)
	host.AWS.Secrets["db-password"] = []byte("hunter2")

	client := NewClient(provider)
	secret, err := GetSecretValue[payload.Text](client, Request{SecretID: "db-password"})
	if err != nil {
		t.Fatalf("GetSecretValue: %v", err)
	}
	if string(secret) != "hunter2" {
		t.Fatalf("secret = %q", secret)
	}
}

func TestGetSecretValueVersioned(t *testing.T) {
	provider, host := testHost(t)
	host.AWS.Secrets["api-key"] = []byte("v2value")

	client := NewClient(provider)
	if _, err := GetSecretValue[payload.Bytes](client, Request{SecretID: "api-key", VersionStage: "AWSPENDING"}); err != nil {
		t.Fatalf("GetSecretValue: %v", err)
	}
	if got := host.AWS.SecretRequests[0].VersionStage; got != "AWSPENDING" {
		t.Fatalf("version stage = %q", got)
	}
}

func TestGetSecretValueMissing(t *testing.T) {
	provider, _ := testHost(t)

	client := NewClient(provider)
	if _, err := GetSecretValue[payload.Bytes](client, Request{SecretID: "absent"}); err == nil {
		t.Fatal("expected an error for a missing secret")
	}
}

func TestCachingClientServesRepeatReadsFromCache(t *testing.T) {
	provider, host := testHost(t)
	host.AWS.Secrets["db-password"] = []byte("hunter2")

	client := NewCachingClient(provider, 5*time.Minute)

	secret, err := GetSecretValue[payload.Text](client, Request{SecretID: "db-password"})
	if err != nil || string(secret) != "hunter2" {
		t.Fatalf("first read: %q, %v", secret, err)
	}
	if len(host.AWS.SecretRequests) != 1 {
		t.Fatalf("first read made %d host fetches", len(host.AWS.SecretRequests))
	}
	if entry := host.Cache.Scalars["db-password"]; string(entry.Value) != "hunter2" || entry.TTLMillis != 300_000 {
		t.Fatalf("cached entry = %+v", entry)
	}

	secret, err = GetSecretValue[payload.Text](client, Request{SecretID: "db-password"})
	if err != nil || string(secret) != "hunter2" {
		t.Fatalf("second read: %q, %v", secret, err)
	}
	if len(host.AWS.SecretRequests) != 1 {
		t.Fatalf("second read hit secrets manager again: %d fetches", len(host.AWS.SecretRequests))
	}
}
