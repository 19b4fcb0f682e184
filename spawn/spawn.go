// Package spawn starts fire-and-forget invocations of other functions in
// the same cache namespace. The spawned function runs detached; nothing is
// reported back about its outcome.
package spawn

import (
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Spawn invokes the named function with the encoded payload and returns
// without waiting for it.
func Spawn(functionName string, p payload.Encoder) error {
	encoded, err := p.EncodePayload()
	if err != nil {
		return err
	}
	return hostabi.SpawnAPI().SpawnFunction(functionName, encoded.IntoBytes())
}
