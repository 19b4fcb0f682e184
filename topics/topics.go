// Package topics publishes messages to topics in the surrounding cache.
package topics

import (
	"encoding/json"

	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Publish sends a message to the named topic.
func Publish(topic, message string) error {
	return hostabi.TopicsAPI().Publish(topic, message)
}

// PublishJSON marshals v and publishes the JSON text.
func PublishJSON(topic string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return &payload.EncodeError{Cause: err}
	}
	return Publish(topic, string(encoded))
}
