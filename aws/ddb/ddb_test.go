package ddb

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/momentohq/functions/aws/auth"
	"github.com/momentohq/functions/hosttest"
)

func testClient(t *testing.T) (*Client, *hosttest.Host) {
	t.Helper()
	host := hosttest.New()
	host.Bind()
	provider, err := auth.NewCredentialsProvider("us-east-1", auth.Credentials{AccessKeyID: "k", SecretAccessKey: "s"})
	if err != nil {
		t.Fatalf("NewCredentialsProvider: %v", err)
	}
	return NewClient(provider), host
}

func TestItemWireShape(t *testing.T) {
	item := Item{
		"name":     String("arthur"),
		"age":      Number(23),
		"is_valid": Bool(true),
		"children": Null(),
	}
	encoded, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var wire map[string]map[string]any
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if wire["name"]["S"] != "arthur" {
		t.Fatalf("name = %v", wire["name"])
	}
	if wire["age"]["N"] != "23" {
		t.Fatalf("age = %v, numbers must travel as strings", wire["age"])
	}
	if wire["is_valid"]["BOOL"] != true {
		t.Fatalf("is_valid = %v", wire["is_valid"])
	}
	if wire["children"]["NULL"] != true {
		t.Fatalf("children = %v", wire["children"])
	}
}

func TestBinaryBase64RoundTrip(t *testing.T) {
	raw := []byte{0x00, 0xff, 0x10, 0x20}
	decoded, err := Binary(raw).AsBinary()
	if err != nil {
		t.Fatalf("AsBinary: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatalf("decoded %x, want %x", decoded, raw)
	}
}

func TestAccessorTypeMismatch(t *testing.T) {
	if _, err := String("x").AsNumber(); err == nil {
		t.Fatal("expected an error reading S as number")
	}
	if _, err := Number(1).AsString(); err == nil {
		t.Fatal("expected an error reading N as string")
	}
}

func TestPutGetItem(t *testing.T) {
	client, _ := testClient(t)

	item := Item{
		"user_id": String("u-17"),
		"age":     Number(23),
		"tags":    StringSet("a", "b"),
	}
	if err := client.PutItem("users", item); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	got, found, err := client.GetItem("users", HashKey("user_id", String("u-17")))
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if !found {
		t.Fatal("expected the item back")
	}
	age, err := got["age"].AsNumber()
	if err != nil || age != 23 {
		t.Fatalf("age = %d, %v", age, err)
	}

	_, found, err = client.GetItem("users", HashKey("user_id", String("nobody")))
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if found {
		t.Fatal("expected a miss")
	}
}

func TestHashRangeKey(t *testing.T) {
	key := HashRangeKey("pk", String("a"), "sk", Number(7))
	if len(key) != 2 || key["pk"].S == nil || key["sk"].N == nil {
		t.Fatalf("key = %+v", key)
	}
}
