// Package cache exposes the cache this function runs within: scalar
// get/set and list manipulation. Values travel through the payload codecs,
// so callers work with their own types rather than raw bytes.
package cache

import (
	"time"

	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Get fetches key and extracts the value with T's codec. found is false
// on a miss.
//
//	value, found, err := cache.Get[payload.JSON[MyStruct]]("my_key")
func Get[T any, P interface {
	*T
	payload.Extractor
}](key string) (T, bool, error) {
	var zero T
	stored, found, err := hostabi.CacheScalarAPI().Get([]byte(key))
	if err != nil {
		return zero, false, err
	}
	if !found {
		return zero, false, nil
	}
	value, err := payload.Extract[T, P](payload.FromHost(stored))
	if err != nil {
		return zero, false, err
	}
	return value, true, nil
}

// Set stores value under key with a time-to-live.
func Set(key string, value payload.Encoder, ttl time.Duration) error {
	encoded, err := value.EncodePayload()
	if err != nil {
		return err
	}
	return hostabi.CacheScalarAPI().Set([]byte(key), encoded.HostPayload(), saturateTTL(ttl))
}

// PushOptions control list pushes. TruncateBackTo caps the list length
// after the push by dropping elements from the far end.
type PushOptions struct {
	TTL            time.Duration
	RefreshTTL     bool
	TruncateBackTo uint32
}

// ListPushFront pushes value onto the front of the named list and returns
// the list length after the push.
func ListPushFront(list string, value payload.Encoder, opts PushOptions) (uint32, error) {
	encoded, err := value.EncodePayload()
	if err != nil {
		return 0, err
	}
	return hostabi.CacheListAPI().PushFront([]byte(list), encoded.HostPayload(), saturateTTL(opts.TTL), opts.RefreshTTL, opts.TruncateBackTo)
}

// ListPushBack pushes value onto the back of the named list and returns
// the list length after the push.
func ListPushBack(list string, value payload.Encoder, opts PushOptions) (uint32, error) {
	encoded, err := value.EncodePayload()
	if err != nil {
		return 0, err
	}
	return hostabi.CacheListAPI().PushBack([]byte(list), encoded.HostPayload(), saturateTTL(opts.TTL), opts.RefreshTTL, opts.TruncateBackTo)
}

// ListPopFront pops the front element of the named list. found is false
// when the list does not exist; length is the list length after the pop.
func ListPopFront[T any, P interface {
	*T
	payload.Extractor
}](list string) (value T, length uint32, found bool, err error) {
	return popList[T, P](hostabi.CacheListAPI().PopFront, list)
}

// ListPopBack pops the back element of the named list. found is false
// when the list does not exist; length is the list length after the pop.
func ListPopBack[T any, P interface {
	*T
	payload.Extractor
}](list string) (value T, length uint32, found bool, err error) {
	return popList[T, P](hostabi.CacheListAPI().PopBack, list)
}

func popList[T any, P interface {
	*T
	payload.Extractor
}](pop func([]byte) (*hostabi.PopResult, error), list string) (T, uint32, bool, error) {
	var zero T
	result, err := pop([]byte(list))
	if err != nil {
		return zero, 0, false, err
	}
	if result == nil {
		return zero, 0, false, nil
	}
	value, err := payload.Extract[T, P](payload.FromHost(result.Value))
	if err != nil {
		return zero, 0, false, err
	}
	return value, result.ListLength, true, nil
}

// The host takes milliseconds; sub-millisecond and negative durations
// clamp to zero.
func saturateTTL(ttl time.Duration) uint64 {
	millis := ttl.Milliseconds()
	if millis < 0 {
		return 0
	}
	return uint64(millis)
}
