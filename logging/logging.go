// Package logging routes a function's logs. The host accepts plain log
// lines and forwards them to configured destinations: a topic in the
// surrounding cache, or a CloudWatch log group reached through an assumed
// IAM role. This package exposes the destination configuration plus zap
// cores that feed the host pipeline, so functions log with zap like any
// other Go program.
package logging

import (
	"github.com/momentohq/functions/hostabi"
)

// Level filters the host's own system logs into a destination.
type Level = hostabi.LogLevel

const (
	LevelOff   = hostabi.LogOff
	LevelError = hostabi.LogError
	LevelWarn  = hostabi.LogWarn
	LevelInfo  = hostabi.LogInfo
	LevelDebug = hostabi.LogDebug
)

// Destination is where log lines go. Build one with TopicDestination or
// CloudWatchDestination.
type Destination struct {
	spec hostabi.LogDestinationSpec
}

// TopicDestination routes logs to a topic in the same cache as the
// function. Subscribe with the CLI to tail them live.
func TopicDestination(topicName string) Destination {
	return Destination{spec: hostabi.LogDestinationSpec{
		Topic: &hostabi.TopicLogDestination{TopicName: topicName},
	}}
}

// CloudWatchDestination routes logs to a CloudWatch log group via an IAM
// role the host assumes.
func CloudWatchDestination(iamRoleARN, logGroupName string) Destination {
	return Destination{spec: hostabi.LogDestinationSpec{
		Cloudwatch: &hostabi.CloudwatchLogDestination{
			IAMRoleARN:   iamRoleARN,
			LogGroupName: logGroupName,
		},
	}}
}

// Configuration pairs a destination with the system-log level filtered
// into it.
type Configuration struct {
	destination    Destination
	systemLogLevel Level
}

// NewConfiguration builds a configuration for the destination with system
// logs at Info.
func NewConfiguration(destination Destination) Configuration {
	return Configuration{destination: destination, systemLogLevel: LevelInfo}
}

// WithSystemLogLevel overrides the system-log level for this destination.
func (c Configuration) WithSystemLogLevel(level Level) Configuration {
	c.systemLogLevel = level
	return c
}

// Configure installs the destinations. Call it once, early in the
// function's lifecycle.
func Configure(configurations ...Configuration) error {
	inputs := make([]hostabi.LogConfigurationInput, len(configurations))
	for i, c := range configurations {
		inputs[i] = hostabi.LogConfigurationInput{
			Destination:     c.destination.spec,
			SystemLogsLevel: c.systemLogLevel,
		}
	}
	return hostabi.LoggingAPI().ConfigureLogging(inputs)
}

// Log writes one raw line to the host's log pipeline. Most code should go
// through a zap logger built on NewHostCore instead.
func Log(message string) {
	hostabi.LoggingAPI().Log(message)
}
