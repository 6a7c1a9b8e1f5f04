package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandlerPersistsErrors(t *testing.T) {
	db := testutil.NewDB(t)
	h := NewPGHandler(db)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("update song failed",
		"user_id", 5,
		"method", "PUT",
		"path", "/users/5/tracks/1/",
		"error", "connection reset",
		"latency_ms", 12.6,
		"song_id", 1,
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "update song failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(5), *entry.UserID)
	assert.Equal(t, "PUT", entry.Method)
	assert.Equal(t, "connection reset", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, float64(1), extra["song_id"])
}

func TestFanoutRespectsLevels(t *testing.T) {
	var all, errorsOnly bytes.Buffer
	f := NewFanout(
		slog.NewJSONHandler(&all, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(f).With("service", "test")

	logger.Info("hello")
	logger.Error("boom")

	assert.Equal(t, 2, bytes.Count(all.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(errorsOnly.Bytes(), []byte("\n")))
	assert.Contains(t, errorsOnly.String(), `"service":"test"`)
}

func TestPurgeOlderThan(t *testing.T) {
	db := testutil.NewDB(t)
	h := NewPGHandler(db)
	slog.New(h).Error("old")
	h.Stop()

	assert.Equal(t, int64(0), PurgeOlderThan(db, time.Now().Add(-time.Hour)))
	assert.Equal(t, int64(1), PurgeOlderThan(db, time.Now().Add(time.Hour)))
}
