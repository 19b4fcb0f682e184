package functions

import (
	"testing"

	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
	"github.com/momentohq/functions/web"
)

func TestPostJSONDispatch(t *testing.T) {
	type request struct {
		Name string `json:"name"`
	}
	type response struct {
		Message string `json:"message"`
	}
	PostJSON(func(req request) (response, error) {
		return response{Message: "Hello, " + req.Name + "!"}, nil
	})
	defer func() { handlers.post = nil }()

	out, err := Invoke(hostabi.InlinePayload([]byte(`{"name":"kvc"}`)))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if string(out) != `{"message":"Hello, kvc!"}` {
		t.Fatalf("response = %q", out)
	}
}

func TestInvokeWithoutHandler(t *testing.T) {
	handlers.post = nil
	if _, err := Invoke(hostabi.InlinePayload(nil)); err == nil {
		t.Fatal("expected an error with no handler registered")
	}
}

func TestSpawnedDispatch(t *testing.T) {
	var got []byte
	Spawned(func(request payload.Data) error {
		got = request.IntoBytes()
		return nil
	})
	defer func() { handlers.spawned = nil }()

	if err := InvokeSpawned(hostabi.InlinePayload([]byte("job 12"))); err != nil {
		t.Fatalf("InvokeSpawned: %v", err)
	}
	if string(got) != "job 12" {
		t.Fatalf("handler saw %q", got)
	}
}

func TestWebDispatch(t *testing.T) {
	Web(func(request payload.Data) (web.Responder, error) {
		name, err := payload.Extract[payload.Text](request)
		if err != nil {
			return nil, err
		}
		return web.Text("Hello, " + string(name) + "!"), nil
	})
	defer func() { handlers.web = nil }()

	resp := InvokeWeb(hostabi.InlinePayload([]byte("kvc")))
	if resp.Status != 200 || string(resp.Body) != "Hello, kvc!" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestWebDispatchErrorBecomes500(t *testing.T) {
	Web(func(request payload.Data) (web.Responder, error) {
		return nil, web.Errorf("room %q is locked", "42")
	})
	defer func() { handlers.web = nil }()

	resp := InvokeWeb(hostabi.InlinePayload(nil))
	if resp.Status != 500 {
		t.Fatalf("status = %d", resp.Status)
	}
}
