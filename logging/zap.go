package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/topics"
)

// NewHostCore returns a zapcore.Core whose entries become host log lines,
// delivered to whatever destinations Configure installed.
func NewHostCore(enab zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(lineEncoder(), zapcore.AddSync(hostWriter{}), enab)
}

// NewTopicCore returns a zapcore.Core publishing entries straight to a
// topic, bypassing the host log pipeline. Publish failures are dropped:
// logging must never take the function down.
func NewTopicCore(topic string, enab zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(lineEncoder(), zapcore.AddSync(&topicWriter{topic: topic}), enab)
}

// NewHostLogger is a convenience for zap.New(NewHostCore(level)) with
// caller annotation.
func NewHostLogger(level zapcore.LevelEnabler) *zap.Logger {
	return zap.New(NewHostCore(level), zap.AddCaller())
}

// NewTopicLogger is a convenience for zap.New(NewTopicCore(topic, level))
// with caller annotation.
func NewTopicLogger(topic string, level zapcore.LevelEnabler) *zap.Logger {
	return zap.New(NewTopicCore(topic, level), zap.AddCaller())
}

func lineEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

type hostWriter struct{}

func (hostWriter) Write(p []byte) (int, error) {
	hostabi.LoggingAPI().Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

type topicWriter struct {
	topic string
}

func (w *topicWriter) Write(p []byte) (int, error) {
	_ = topics.Publish(w.topic, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
