package hosttest

import (
	"github.com/momentohq/functions/hostabi"
)

// HTTPCall is one recorded outbound request. The body is materialized at
// record time.
type HTTPCall struct {
	Method  string
	URL     string
	Headers []hostabi.Header
	Body    []byte
}

// HTTP replays scripted responses, one per request, and records calls.
type HTTP struct {
	Responses []hostabi.HTTPResponse
	Err       error
	Calls     []HTTPCall
}

// Respond appends a response for the next request.
func (h *HTTP) Respond(resp hostabi.HTTPResponse) *HTTP {
	h.Responses = append(h.Responses, resp)
	return h
}

func (h *HTTP) Get(req hostabi.HTTPRequest) (hostabi.HTTPResponse, error) {
	return h.call("GET", req)
}

func (h *HTTP) Put(req hostabi.HTTPRequest) (hostabi.HTTPResponse, error) {
	return h.call("PUT", req)
}

func (h *HTTP) Post(req hostabi.HTTPRequest) (hostabi.HTTPResponse, error) {
	return h.call("POST", req)
}

func (h *HTTP) Delete(req hostabi.HTTPRequest) (hostabi.HTTPResponse, error) {
	return h.call("DELETE", req)
}

func (h *HTTP) call(method string, req hostabi.HTTPRequest) (hostabi.HTTPResponse, error) {
	h.Calls = append(h.Calls, HTTPCall{
		Method:  method,
		URL:     req.URL,
		Headers: req.Headers,
		Body:    materialize(req.Body),
	})
	if h.Err != nil {
		return hostabi.HTTPResponse{}, h.Err
	}
	if len(h.Responses) == 0 {
		return hostabi.HTTPResponse{Status: 200}, nil
	}
	resp := h.Responses[0]
	h.Responses = h.Responses[1:]
	return resp, nil
}
