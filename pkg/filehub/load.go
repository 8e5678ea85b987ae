package filehub

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/storagestats"
)

// pendingLoad collects the two fetches of one generation.
type pendingLoad struct {
	generation  uint64
	records     []catalog.FileRecord
	stats       storagestats.Stats
	recordsDone bool
	statsDone   bool
	err         error
}

func (p *pendingLoad) done() bool {
	return p.recordsDone && p.statsDone
}

// Reload starts a new generation that fetches records and stats concurrently.
// Results of older generations are dropped when they arrive.
// Must be called on the UI goroutine, or before the app runs.
func (v *Viewer) Reload() {
	if v.cancelLoad != nil {
		v.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancelLoad = cancel

	v.generation++
	generation := v.generation
	v.pending = &pendingLoad{generation: generation}
	v.status = statusLoading
	v.render()
	v.logger.Debug("loading catalog", zap.Uint64("generation", generation))

	go func() {
		records, err := v.catalog.ListFiles(ctx, catalogapi.ListOptions{})
		v.app.QueueUpdateDraw(func() {
			v.onRecordsLoaded(generation, records, err)
		})
	}()
	go func() {
		stats, err := v.catalog.StorageStats(ctx)
		v.app.QueueUpdateDraw(func() {
			v.onStatsLoaded(generation, stats, err)
		})
	}()
}

func (v *Viewer) onRecordsLoaded(generation uint64, records []catalog.FileRecord, err error) {
	p := v.pendingFor(generation)
	if p == nil {
		return
	}
	p.recordsDone = true
	if err != nil {
		p.err = errors.Join(p.err, fmt.Errorf("failed to list files: %w", err))
	} else {
		p.records = records
	}
	v.settle(p)
}

func (v *Viewer) onStatsLoaded(generation uint64, stats storagestats.Stats, err error) {
	p := v.pendingFor(generation)
	if p == nil {
		return
	}
	p.statsDone = true
	if err != nil {
		p.err = errors.Join(p.err, fmt.Errorf("failed to get storage stats: %w", err))
	} else {
		p.stats = stats
	}
	v.settle(p)
}

func (v *Viewer) pendingFor(generation uint64) *pendingLoad {
	if v.pending == nil || v.pending.generation != generation || generation != v.generation {
		v.logger.Debug("discarding stale load result",
			zap.Uint64("generation", generation),
			zap.Uint64("current", v.generation))
		return nil
	}
	return v.pending
}

// settle enters the failure state on the first error, without waiting for the
// other fetch, and publishes the data only once both fetches succeeded.
func (v *Viewer) settle(p *pendingLoad) {
	if p.err != nil {
		if v.status != statusFailed {
			v.logger.Error("failed to load catalog", zap.Error(p.err))
			v.status = statusFailed
			v.render()
		}
		if p.done() {
			v.pending = nil
		}
		return
	}
	if !p.done() {
		return
	}
	v.pending = nil
	v.records = p.records
	v.storage = p.stats
	v.status = statusReady
	v.logger.Info("catalog loaded",
		zap.Uint64("generation", p.generation),
		zap.Int("records", len(p.records)))
	v.recompute()
}
