package workers

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
)

// snapshotWorker periodically copies the whole data directory into a
// timestamped folder under the backup directory. Because every document is
// rewritten atomically via rename, copying the tree at any moment yields a
// consistent set of JSON files.
type snapshotWorker struct {
	dataDir   string
	backupDir string
	interval  time.Duration

	logger *logger.Logger
}

// newSnapshotWorker returns nil when the snapshot interval is zero, which
// disables the worker entirely.
func newSnapshotWorker(storageCfg config.Storage, workersCfg config.Workers, logger *logger.Logger) *snapshotWorker {
	if workersCfg.SnapshotInterval <= 0 {
		return nil
	}

	return &snapshotWorker{
		dataDir:   storageCfg.DataDir,
		backupDir: storageCfg.BackupDir,
		interval:  workersCfg.SnapshotInterval,
		logger:    logger,
	}
}

func (s *snapshotWorker) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("snapshot worker started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.snapshot(); err != nil {
			s.logger.Err(err).Str("func", "*snapshotWorker.Run").Msg("snapshot failed")
		}
	}
}

func (s *snapshotWorker) snapshot() error {
	target := filepath.Join(s.backupDir, time.Now().UTC().Format("20060102T150405Z"))

	return filepath.WalkDir(s.dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// data dir may not exist yet before the first write
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		rel, err := filepath.Rel(s.dataDir, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(target, rel), 0o755)
		}

		return copyFile(path, filepath.Join(target, rel))
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
