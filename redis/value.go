package redis

import (
	"fmt"
)

// Value is one decoded reply element. The concrete types are Nil, Int,
// Data, Bulk, Status and Okay; nothing outside this package satisfies the
// interface.
type Value interface {
	fmt.Stringer
	isValue()
}

// Nil is a missing value, e.g. a GET for a key that does not exist.
type Nil struct{}

// Int is an integer reply.
type Int int64

// Data is a byte-string reply.
type Data []byte

// Bulk is a nested reply sequence. The wrapped stream stays undecoded
// until iterated.
type Bulk struct {
	Stream *ReplyStream
}

// Status is a status-line reply. The protocol uses the same shape for
// benign statuses and error strings; which one this is depends on the
// command that produced it.
type Status string

// Okay is the protocol's simple success acknowledgement.
type Okay struct{}

func (Nil) isValue()    {}
func (Int) isValue()    {}
func (Data) isValue()   {}
func (Bulk) isValue()   {}
func (Status) isValue() {}
func (Okay) isValue()   {}

func (Nil) String() string      { return "Nil" }
func (v Int) String() string    { return fmt.Sprintf("Int(%d)", int64(v)) }
func (v Data) String() string   { return fmt.Sprintf("Data(%d bytes)", len(v)) }
func (Bulk) String() string     { return "Bulk" }
func (v Status) String() string { return fmt.Sprintf("Status(%q)", string(v)) }
func (Okay) String() string     { return "Okay" }
