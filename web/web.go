// Package web supports functions fronted by HTTP. It exposes the caller's
// request context and the response types a web handler returns.
package web

import (
	"github.com/momentohq/functions/hostabi"
)

// Header is a request or response header.
type Header = hostabi.Header

// Headers returns the caller's request headers. The host hands them over
// exactly once: repeated calls yield nothing.
func Headers() []Header {
	return hostabi.WebSupportAPI().Headers()
}

// TokenMetadata returns the metadata embedded in the caller's token, if
// any. Like Headers, the value is consumed on first call.
func TokenMetadata() (string, bool) {
	return hostabi.WebSupportAPI().TokenMetadata()
}
