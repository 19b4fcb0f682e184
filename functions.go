package functions

import (
	"github.com/momentohq/functions/errors"
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
	"github.com/momentohq/functions/web"
)

// PostHandler services a plain invocation: payload in, payload out.
type PostHandler func(request payload.Data) (payload.Encoder, error)

// SpawnHandler services a fire-and-forget invocation started by
// spawn.Spawn. Its return value is never delivered anywhere; an error only
// shows up in the function's logs.
type SpawnHandler func(request payload.Data) error

// WebHandler services an HTTP-fronted invocation. Returning an error
// yields a 500 carrying the error text; return a web.Responder for full
// control over status, headers and body.
type WebHandler func(request payload.Data) (web.Responder, error)

var handlers struct {
	post    PostHandler
	spawned SpawnHandler
	web     WebHandler
}

// Post registers the handler for plain invocations. Call it once, from an
// init function or main.
func Post(handler PostHandler) {
	handlers.post = handler
}

// PostJSON registers a typed JSON handler: the request payload is decoded
// into Request and the returned Response is encoded back.
func PostJSON[Request, Response any](handler func(Request) (Response, error)) {
	Post(func(request payload.Data) (payload.Encoder, error) {
		decoded, err := payload.Extract[payload.JSON[Request]](request)
		if err != nil {
			return nil, err
		}
		response, err := handler(decoded.Value)
		if err != nil {
			return nil, err
		}
		return payload.JSON[Response]{Value: response}, nil
	})
}

// Spawned registers the handler for spawned invocations.
func Spawned(handler SpawnHandler) {
	handlers.spawned = handler
}

// SpawnedJSON registers a typed JSON spawn handler.
func SpawnedJSON[Request any](handler func(Request) error) {
	Spawned(func(request payload.Data) error {
		decoded, err := payload.Extract[payload.JSON[Request]](request)
		if err != nil {
			return err
		}
		return handler(decoded.Value)
	})
}

// Web registers the handler for web invocations.
func Web(handler WebHandler) {
	handlers.web = handler
}

// Invoke dispatches one plain invocation. The transport binding calls it
// with the request payload after Bind-ing the host.
func Invoke(request hostabi.Payload) ([]byte, error) {
	if handlers.post == nil {
		return nil, errors.Unsupported(errors.PhaseCall, "no post handler registered")
	}
	response, err := handlers.post(payload.FromHost(request))
	if err != nil {
		return nil, err
	}
	encoded, err := response.EncodePayload()
	if err != nil {
		return nil, err
	}
	return encoded.IntoBytes(), nil
}

// InvokeSpawned dispatches one spawned invocation.
func InvokeSpawned(request hostabi.Payload) error {
	if handlers.spawned == nil {
		return errors.Unsupported(errors.PhaseCall, "no spawn handler registered")
	}
	return handlers.spawned(payload.FromHost(request))
}

// InvokeWeb dispatches one web invocation. Handler errors become 500
// responses; they never cross back to the host as invocation failures.
func InvokeWeb(request hostabi.Payload) web.Response {
	if handlers.web == nil {
		return web.Errorf("no web handler registered").WebResponse()
	}
	responder, err := handlers.web(payload.FromHost(request))
	if err != nil {
		return web.FromError(err).WebResponse()
	}
	return responder.WebResponse()
}
