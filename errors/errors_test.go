package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := New(PhaseCall, KindNotFound).
		Op("cache_scalar.get").
		Detail("key %q missing", "user:1").
		Build()

	msg := err.Error()
	if !strings.Contains(msg, "[call]") {
		t.Errorf("missing phase in %q", msg)
	}
	if !strings.Contains(msg, "not_found") {
		t.Errorf("missing kind in %q", msg)
	}
	if !strings.Contains(msg, "cache_scalar.get") {
		t.Errorf("missing op in %q", msg)
	}
	if !strings.Contains(msg, `key "user:1" missing`) {
		t.Errorf("missing detail in %q", msg)
	}
}

func TestError_Is(t *testing.T) {
	err := HostCall("topic.publish", KindUnavailable, "connection reset")

	if !stderrors.Is(err, &Error{Phase: PhaseCall, Kind: KindUnavailable}) {
		t.Error("expected match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseCall, Kind: KindNotFound}) {
		t.Error("unexpected match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhaseConfig, KindInternal, cause, "configure logging")

	if !stderrors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
	if !strings.Contains(err.Error(), "caused by: boom") {
		t.Errorf("cause not rendered: %q", err.Error())
	}
}

func TestMalformedReply(t *testing.T) {
	err := MalformedReply("redis.pipe", "missing first reply of batch")
	if err.Phase != PhaseDecode || err.Kind != KindMalformedReply {
		t.Fatalf("unexpected classification: %v %v", err.Phase, err.Kind)
	}
}
