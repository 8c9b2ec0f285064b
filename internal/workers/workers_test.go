package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	runs int
}

func (c *countingWorker) Run() { c.runs++ }

func TestWorkers_Run(t *testing.T) {
	t.Run("every registered worker runs once", func(t *testing.T) {
		first := &countingWorker{}
		second := &countingWorker{}

		ws := &Workers{workers: []Worker{first, second}}
		ws.Run()

		assert.Equal(t, 1, first.runs)
		assert.Equal(t, 1, second.runs)
	})

	t.Run("no registered workers", func(t *testing.T) {
		(&Workers{}).Run()
	})
}
