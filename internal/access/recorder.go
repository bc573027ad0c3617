// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/taibuivan/consumo/pkg/uuidv7"
)

// recordTimeout bounds the background write so a stalled database cannot
// accumulate goroutines indefinitely.
const recordTimeout = 5 * time.Second

// Recorder delivers audit rows to two sinks: the database and an
// append-only JSON-lines file.
//
// # Delivery Guarantees
//
// Best-effort only. Each record is written on a background goroutine with a
// detached timeout context, so the originating request never waits on it and
// never fails because of it. Sink errors are logged and swallowed.
type Recorder struct {
	repository Repository
	fileLog    *slog.Logger
	log        *slog.Logger
}

// NewRecorder constructs a [Recorder].
//
// fileSink receives one JSON line per record; pass io.Discard to disable the
// file trail (tests do). log receives the recorder's own failures.
func NewRecorder(repository Repository, fileSink io.Writer, log *slog.Logger) *Recorder {
	return &Recorder{
		repository: repository,
		fileLog:    slog.New(slog.NewJSONHandler(fileSink, nil)),
		log:        log,
	}
}

// OpenLogFile opens (creating if needed) the append-only access log file.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Record fires off a best-effort write of one audit row.
//
// It returns immediately. The write runs on a context detached from the
// request so cancellation of the request does not abort the audit trail.
func (recorder *Recorder) Record(record *ResourceAccess) {
	if record.ID == "" {
		record.ID = uuidv7.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		recorder.record(ctx, record)
	}()
}

// record performs the actual dual-sink write. Synchronous; tests call it
// directly to avoid racing the background goroutine.
func (recorder *Recorder) record(ctx context.Context, record *ResourceAccess) {
	if err := recorder.repository.Create(ctx, record); err != nil {
		recorder.log.Error("access_record_store_failed",
			slog.String("resource_type", record.ResourceType),
			slog.Any("error", err),
		)
	}

	attrs := []any{
		slog.String("id", record.ID),
		slog.String("resource_type", record.ResourceType),
		slog.String("access_type", record.AccessType),
		slog.String("device_type", record.DeviceType),
		slog.Time("at", record.CreatedAt),
	}
	if record.UserID != nil {
		attrs = append(attrs, slog.String("user_id", *record.UserID))
	}
	if record.ResourceID != nil {
		attrs = append(attrs, slog.String("resource_id", *record.ResourceID))
	}

	recorder.fileLog.Info("resource_access", attrs...)
}
