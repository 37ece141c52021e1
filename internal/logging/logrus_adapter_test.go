package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "warn level with text format", level: "warn", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func newBufferedLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(l), &buf
}

func TestLogrusAdapter_FieldsAreWritten(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.DebugLevel)

	logger.WithField(FieldRunID, "abc").Info("conversion started",
		Field{Key: FieldVariant, Value: "comissao"})

	out := buf.String()
	assert.Contains(t, out, "conversion started")
	assert.Contains(t, out, "run_id=abc")
	assert.Contains(t, out, "variant=comissao")
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.ErrorLevel)

	logger.WithError(errors.New("disk full")).Error("write failed")

	out := buf.String()
	assert.Contains(t, out, "write failed")
	assert.Contains(t, out, "disk full")
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.WarnLevel)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestNewDiscardLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDiscardLogger().WithField("k", "v").Error("dropped")
	})
}

func TestLogrusAdapter_WithFieldsChains(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.InfoLevel)

	derived := logger.WithFields(Field{Key: FieldStem, Value: "vales_jan"}, Field{Key: FieldCount, Value: 1})
	derived.Info("first", Field{Key: FieldCount, Value: 2})
	logger.Info("parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "stem=vales_jan")
	assert.Contains(t, string(lines[0]), "count=2")
	assert.NotContains(t, string(lines[1]), "stem=")
}
