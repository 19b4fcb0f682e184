package web

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/hosttest"
	"github.com/momentohq/functions/httpcall"
	"github.com/momentohq/functions/payload"
)

func TestHeadersConsumeOnce(t *testing.T) {
	host := hosttest.New()
	host.Web.RequestHeaders = []hostabi.Header{{Name: "authorization", Value: "abc123"}}
	host.Bind()

	headers := Headers()
	if len(headers) != 1 || headers[0].Name != "authorization" {
		t.Fatalf("headers = %+v", headers)
	}
	if again := Headers(); len(again) != 0 {
		t.Fatalf("second call yielded %+v", again)
	}
}

func TestTokenMetadataConsumeOnce(t *testing.T) {
	host := hosttest.New()
	host.Web.Metadata = "user-17"
	host.Web.HasMetadata = true
	host.Bind()

	metadata, ok := TokenMetadata()
	if !ok || metadata != "user-17" {
		t.Fatalf("metadata = %q, %v", metadata, ok)
	}
	if _, ok := TokenMetadata(); ok {
		t.Fatal("second call yielded metadata")
	}
}

func TestResponseBuilder(t *testing.T) {
	resp := NewResponse().
		WithStatus(418).
		WithHeader("x-request-id", "42").
		WithBody([]byte("short and stout"))
	if resp.Status != 418 || len(resp.Headers) != 1 || string(resp.Body) != "short and stout" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestConversions(t *testing.T) {
	if resp := Text("hello"); resp.Headers[0].Value != "text/plain; charset=utf-8" || string(resp.Body) != "hello" {
		t.Fatalf("Text = %+v", resp)
	}
	if resp := Bytes([]byte{1, 2}); resp.Headers[0].Value != "application/octet-stream" {
		t.Fatalf("Bytes = %+v", resp)
	}
	if resp := NoContent(); resp.Status != 204 || len(resp.Body) != 0 {
		t.Fatalf("NoContent = %+v", resp)
	}

	resp := JSON(map[string]string{"message": "Hello, kvc!"})
	if resp.Status != 200 || resp.Headers[0].Value != "application/json; charset=utf-8" {
		t.Fatalf("JSON = %+v", resp)
	}
	if string(resp.Body) != `{"message":"Hello, kvc!"}` {
		t.Fatalf("JSON body = %q", resp.Body)
	}
}

func TestProxy(t *testing.T) {
	upstream := httpcall.Response{
		Status:  302,
		Headers: []Header{{Name: "location", Value: "https://example.com"}},
		Body:    payload.FromString("moved"),
	}
	resp := Proxy(upstream)
	if resp.Status != 302 || resp.Headers[0].Name != "location" || string(resp.Body) != "moved" {
		t.Fatalf("Proxy = %+v", resp)
	}
}

func TestErrorResponder(t *testing.T) {
	cause := stderrors.New("table scan exploded")
	webErr := FromError(cause)
	if !stderrors.Is(webErr, cause) {
		t.Fatal("cause not preserved")
	}
	resp := webErr.WebResponse()
	if resp.Status != 500 || !strings.Contains(string(resp.Body), "table scan exploded") {
		t.Fatalf("resp = %+v", resp)
	}

	if again := FromError(webErr); again != webErr {
		t.Fatal("wrapping an *Error should pass it through")
	}

	if resp := Errorf("no such room %q", "42").WebResponse(); !strings.Contains(string(resp.Body), `no such room "42"`) {
		t.Fatalf("Errorf body = %q", resp.Body)
	}
}
