package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_SharesSinkWithDerivedLoggers(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldRunID, "r1")
	child.WithError(errors.New("boom")).Warn("derived", Field{Key: FieldCount, Value: 2})
	mock.Info("parent")

	entries := mock.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, "WARN", entries[0].Level)
	assert.EqualError(t, entries[0].Error, "boom")
	runID, ok := entries[0].FieldValue(FieldRunID)
	assert.True(t, ok)
	assert.Equal(t, "r1", runID)
	count, _ := entries[0].FieldValue(FieldCount)
	assert.Equal(t, 2, count)

	assert.True(t, mock.HasEntry("INFO", "parent"))
	assert.Len(t, mock.EntriesAt("WARN"), 1)
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Debug("zero")
	assert.True(t, mock.HasEntry("DEBUG", "zero"))
}
