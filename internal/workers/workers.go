package workers

import (
	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers from the storage
// and worker configuration. Workers whose configuration disables them are not
// registered.
func NewWorkers(storageCfg config.Storage, workersCfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if snapshot := newSnapshotWorker(storageCfg, workersCfg, logger); snapshot != nil {
		ws.workers = append(ws.workers, snapshot)
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
