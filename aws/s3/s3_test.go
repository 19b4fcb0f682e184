package s3

import (
	"testing"

	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/hosttest"
	"github.com/momentohq/functions/payload"
)

func testClient(t *testing.T) (*Client, *hosttest.Host) {
	t.Helper()
	host := hosttest.New()
	host.Bind()
	provider, err := auth.NewCredentialsProvider("us-west-2", auth.Credentials{AccessKeyID: "k", SecretAccessKey: "s"})
	if err != nil {
		t.Fatalf("NewCredentialsProvider: %v", err)
	}
	return NewClient(provider), host
}

func TestPutGetRoundTrip(t *testing.T) {
	client, host := testClient(t)

	if err := client.Put("my-bucket", "reports/today.txt", payload.Text("all green")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got := host.AWS.S3Objects["my-bucket/reports/today.txt"]; string(got) != "all green" {
		t.Fatalf("stored %q", got)
	}

	body, found, err := Get[payload.Text](client, "my-bucket", "reports/today.txt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || string(body) != "all green" {
		t.Fatalf("got %q, found=%v", body, found)
	}
}

func TestGetMiss(t *testing.T) {
	client, _ := testClient(t)

	_, found, err := Get[payload.Bytes](client, "my-bucket", "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("expected a miss")
	}
}
