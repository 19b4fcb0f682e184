// Package httpcall issues outbound HTTP requests through the host's
// connection pool. Request and response bodies flow through payload.Data,
// so a function can proxy a large response onward without ever
// materializing it in guest memory.
package httpcall

import (
	"strings"

	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Header is a request or response header.
type Header = hostabi.Header

// Response is the host's reply. The body stays host-resident until
// consumed through Body or ExtractBody.
type Response struct {
	Status  uint16
	Headers []Header
	Body    payload.Data
}

// Header returns the first header with the given name, matched
// case-insensitively.
func (r *Response) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// ExtractBody consumes the response body and decodes it with T's codec.
func ExtractBody[T any, P interface {
	*T
	payload.Extractor
}](r *Response) (T, error) {
	return payload.Extract[T, P](r.Body)
}

// Get issues a GET.
func Get(url string, headers []Header) (Response, error) {
	return roundTrip(hostabi.HTTPAPI().Get, url, headers, nil)
}

// Delete issues a DELETE.
func Delete(url string, headers []Header) (Response, error) {
	return roundTrip(hostabi.HTTPAPI().Delete, url, headers, nil)
}

// Put issues a PUT with the encoded body.
func Put(url string, headers []Header, body payload.Encoder) (Response, error) {
	return roundTrip(hostabi.HTTPAPI().Put, url, headers, body)
}

// Post issues a POST with the encoded body.
func Post(url string, headers []Header, body payload.Encoder) (Response, error) {
	return roundTrip(hostabi.HTTPAPI().Post, url, headers, body)
}

func roundTrip(call func(hostabi.HTTPRequest) (hostabi.HTTPResponse, error), url string, headers []Header, body payload.Encoder) (Response, error) {
	req := hostabi.HTTPRequest{URL: url, Headers: headers}
	if body != nil {
		encoded, err := body.EncodePayload()
		if err != nil {
			return Response{}, err
		}
		req.Body = encoded.HostPayload()
	}
	resp, err := call(req)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Status:  resp.Status,
		Headers: resp.Headers,
		Body:    payload.FromHost(resp.Body),
	}, nil
}
