// Package staticfile publishes the leaderboard as JSON files for static hosting.
package staticfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
)

const (
	CurrentFile     = "leaderboard.json"
	DefaultValidity = time.Hour

	historyLayout = "2006-01-02T15-04-05"
)

// ErrPlaceholder is returned when asked to publish synthetic data.
var ErrPlaceholder = errors.New("refusing to publish placeholder leaderboard")

// Document is the published file body.
type Document struct {
	model.Snapshot
	NextUpdateAfter time.Time      `json:"nextUpdateAfter"`
	Metadata        model.Metadata `json:"metadata"`
}

// Files lists what Publish wrote.
type Files struct {
	Current string
	History string
}

// Writer writes leaderboard.json plus a timestamped history copy into dir.
type Writer struct {
	dir      string
	validity time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewWriter returns a Writer. A non-positive validity uses DefaultValidity.
func NewWriter(dir string, validity time.Duration, logger *zap.Logger) *Writer {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Writer{dir: dir, validity: validity, now: clock.Now, logger: logger}
}

// Publish writes snap. The current file is replaced atomically.
func (w *Writer) Publish(snap model.Snapshot) (Files, error) {
	if snap.IsPlaceholder() {
		return Files{}, ErrPlaceholder
	}

	now := w.now().UTC()
	doc := Document{
		Snapshot:        snap,
		NextUpdateAfter: now.Add(w.validity),
		Metadata: model.Metadata{
			TotalMiners:      len(snap.Miners),
			LastScannedBlock: snap.LastScannedBlock,
			IsPartialUpdate:  snap.Partial,
		},
	}
	if doc.Miners == nil {
		doc.Miners = []model.MinerRecord{}
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Files{}, fmt.Errorf("encode leaderboard: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("create %s: %w", w.dir, err)
	}

	files := Files{
		Current: filepath.Join(w.dir, CurrentFile),
		History: filepath.Join(w.dir, historyName(now)),
	}
	if err := writeAtomic(files.Current, body); err != nil {
		return Files{}, err
	}
	if err := writeAtomic(files.History, body); err != nil {
		return Files{}, err
	}

	w.logger.Info("static leaderboard written",
		zap.String("current", files.Current),
		zap.String("history", files.History),
		zap.Int("miners", len(snap.Miners)),
		zap.String("source", string(snap.Source)))
	return files, nil
}

// historyName mirrors an ISO timestamp with ':' and '.' replaced by '-'.
func historyName(t time.Time) string {
	return fmt.Sprintf("leaderboard-%s-%03dZ.json", t.Format(historyLayout), t.Nanosecond()/int(time.Millisecond))
}

func writeAtomic(path string, body []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".leaderboard-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
