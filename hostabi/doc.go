// Package hostabi declares the capability surface the host exposes to a
// guest function. Every privileged operation the SDK performs (cache and
// topic access, redis pipelines, outbound HTTP, AWS calls, logging, spawn)
// crosses this boundary and nothing else does.
//
// The package contains only types and interfaces. The concrete binding to
// the host transport (the component-model imports on a real deployment, or
// an in-memory host in tests) is installed once per invocation with Bind:
//
//	hostabi.Bind(hostabi.Host{
//		Cache:  myCache,
//		Topics: myTopics,
//	})
//
// Call-site packages fetch individual capabilities through the typed
// accessors (CacheScalarAPI, RedisAPI, ...), which panic with a clear
// message when the capability was never bound. A guest executes one
// logical thread per invocation, so the registry needs no locking.
//
// # Payloads
//
// Byte payloads cross the boundary as a Payload: either inline bytes that
// already live in guest memory, or a BufferResource handle to bytes still
// resident on the host. BufferResource carries an implicit read cursor
// maintained by the host; the guest must never issue two outstanding reads
// against the same handle. See the payload package for the guest-side
// abstraction over this shape.
package hostabi
