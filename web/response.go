package web

import (
	"encoding/json"
	"fmt"

	"github.com/momentohq/functions/httpcall"
)

// Response is what a web function hands back to the caller.
type Response struct {
	Status  uint16
	Headers []Header
	Body    []byte
}

// Responder is anything a web handler can return. Response, *Error and
// the conversion helpers below all satisfy it.
type Responder interface {
	WebResponse() Response
}

func (r Response) WebResponse() Response { return r }

// NewResponse is a 200 with no headers and no body.
func NewResponse() Response {
	return Response{Status: 200}
}

// WithStatus sets the response status.
func (r Response) WithStatus(status uint16) Response {
	r.Status = status
	return r
}

// WithHeader appends one header.
func (r Response) WithHeader(name, value string) Response {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
	return r
}

// WithHeaders replaces the header set.
func (r Response) WithHeaders(headers []Header) Response {
	r.Headers = headers
	return r
}

// WithBody sets the response body.
func (r Response) WithBody(body []byte) Response {
	r.Body = body
	return r
}

func contentType(value string) []Header {
	return []Header{{Name: "content-type", Value: value}}
}

// Bytes is a 200 with an application/octet-stream body.
func Bytes(body []byte) Response {
	return Response{Status: 200, Headers: contentType("application/octet-stream"), Body: body}
}

// Text is a 200 with a text/plain body.
func Text(body string) Response {
	return Response{Status: 200, Headers: contentType("text/plain; charset=utf-8"), Body: []byte(body)}
}

// JSON marshals v into a 200 with an application/json body. A marshal
// failure becomes a 500 rather than an error: at response-building time
// there is nobody left to hand an error to.
func JSON(v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		return Response{Status: 500, Body: fmt.Appendf(nil, "Failed to encode response: %v", err)}
	}
	return Response{Status: 200, Headers: contentType("application/json; charset=utf-8"), Body: body}
}

// NoContent is an empty 204.
func NoContent() Response {
	return Response{Status: 204}
}

// Proxy converts an outbound HTTP response into this function's own
// response, materializing the body. Status and headers pass through.
func Proxy(resp httpcall.Response) Response {
	return Response{
		Status:  resp.Status,
		Headers: resp.Headers,
		Body:    resp.Body.IntoBytes(),
	}
}

// Error is a handler failure rendered as an HTTP response. It satisfies
// both error and Responder, so handlers can return it either way; the
// caller sees a 500 with the error text in the body.
type Error struct {
	Cause    error
	Response Response
}

// Errorf builds an Error from a message.
func Errorf(format string, args ...any) *Error {
	return &Error{
		Response: Response{Status: 500, Body: fmt.Appendf(nil, format, args...)},
	}
}

// FromError wraps any error as a 500.
func FromError(err error) *Error {
	if webErr, ok := err.(*Error); ok {
		return webErr
	}
	return &Error{
		Cause:    err,
		Response: Response{Status: 500, Body: fmt.Appendf(nil, "An error occurred during function invocation: %v", err)},
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Response.Body)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) WebResponse() Response { return e.Response }
