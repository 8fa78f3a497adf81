package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Manager provides the filesystem operations the report pipeline needs:
// output-path defaulting, directory creation and atomic finalization.
type Manager struct {
	logger *slog.Logger
}

// NewManager creates a new file manager instance
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{logger: logger}
}

// DefaultOutputPath derives the timestamped artifact name used when the
// caller does not supply an output path.
func (m *Manager) DefaultOutputPath(now time.Time) string {
	return fmt.Sprintf("procurement_analysis_%s.xlsx", now.Format("2006-01-02_150405"))
}

// EnsureDir creates the directory containing path, with all parents.
// A bare filename needs no directory and is a no-op.
func (m *Manager) EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}

	m.logger.Debug("ensuring output directory exists",
		slog.String("dir", dir))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Commit moves a finished temporary file into its final location.
// Rename is atomic on the same filesystem, so a crash mid-commit never
// leaves a half-written artifact under the final path.
func (m *Manager) Commit(tmpPath, finalPath string) error {
	m.logger.Debug("committing output file",
		slog.String("tmp", tmpPath),
		slog.String("final", finalPath))

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize output file: %w", err)
	}
	return nil
}
