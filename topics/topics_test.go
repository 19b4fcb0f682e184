package topics

import (
	"testing"

	"github.com/momentohq/functions/hosttest"
)

func TestPublish(t *testing.T) {
	host := hosttest.New()
	host.Bind()

	if err := Publish("alerts", "disk full"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(host.Topics.Published) != 1 {
		t.Fatalf("published %d messages", len(host.Topics.Published))
	}
	p := host.Topics.Published[0]
	if p.Topic != "alerts" || p.Value != "disk full" {
		t.Fatalf("published %+v", p)
	}
}

func TestPublishJSON(t *testing.T) {
	host := hosttest.New()
	host.Bind()

	err := PublishJSON("events", map[string]int{"count": 3})
	if err != nil {
		t.Fatalf("PublishJSON: %v", err)
	}
	if got, want := host.Topics.Published[0].Value, `{"count":3}`; got != want {
		t.Fatalf("published %q, want %q", got, want)
	}
}
