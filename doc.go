// Package functions is the guest-side SDK for writing Momento Functions
// in Go.
//
// A function is a short-lived, single-threaded guest program running in a
// sandbox next to the cache it serves. The host owns every connection and
// every byte buffer; the guest declares what it needs through capability
// interfaces and moves payloads across the boundary with explicit codecs.
//
// # Architecture Overview
//
// The SDK is organized into packages with distinct responsibilities:
//
//	functions/           Root package: handler registration and dispatch
//	├── hostabi/         Capability interfaces and the host binding
//	├── payload/         Payload buffers and the encode/extract codecs
//	├── errors/          Structured error types for host-call failures
//	├── redis/           Batched redis/valkey commands with lazy reply decoding
//	├── cache/           Scalar and list operations on the surrounding cache
//	├── topics/          Topic publishing
//	├── httpcall/        Outbound HTTP through the host's connection pool
//	├── spawn/           Fire-and-forget invocation of other functions
//	├── token/           Disposable token minting with permission builders
//	├── logging/         Host log destinations and zap cores
//	├── web/             Request context and responses for web functions
//	├── aws/             auth, s3, ddb, lambda and secretsmanager clients
//	└── hosttest/        In-memory host implementation for tests
//
// # Quick Start
//
// A JSON-in, JSON-out function:
//
//	type Request struct {
//	    Name string `json:"name"`
//	}
//	type Response struct {
//	    Message string `json:"message"`
//	}
//
//	func init() {
//	    functions.PostJSON(func(req Request) (Response, error) {
//	        return Response{Message: "Hello, " + req.Name + "!"}, nil
//	    })
//	}
//
// A web function with full control over the HTTP response:
//
//	functions.Web(func(request payload.Data) (web.Responder, error) {
//	    name, err := payload.Extract[payload.Text](request)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return web.Text("Hello, " + string(name) + "!"), nil
//	})
//
// # Payload Movement
//
// Large values stay on the host until the guest asks for the bytes.
// payload.Data is consumed at most once; a function that only forwards a
// value (cache to HTTP, HTTP to response) never copies it through guest
// memory. See the payload package for the codec system.
//
// # Concurrency
//
// The sandbox runs one invocation at a time on one goroutine. Nothing in
// this SDK is safe for concurrent use, and nothing needs to be.
package functions
