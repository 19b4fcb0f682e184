package spawn

import (
	"testing"

	"github.com/momentohq/functions/hosttest"
	"github.com/momentohq/functions/payload"
)

func TestSpawn(t *testing.T) {
	host := hosttest.New()
	host.Bind()

	if err := Spawn("worker", payload.Text("job 12")); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if len(host.Spawn.Spawned) != 1 {
		t.Fatalf("spawned %d functions", len(host.Spawn.Spawned))
	}
	s := host.Spawn.Spawned[0]
	if s.Name != "worker" || string(s.Payload) != "job 12" {
		t.Fatalf("spawned %+v", s)
	}
}
