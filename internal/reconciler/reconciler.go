// Package reconciler contains the periodic job which repairs denormalized counters.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Decentr-net/go-api/health"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/chronicle/internal/storage"
)

var log = logrus.WithField("layer", "reconciler").WithField("package", "reconciler")

// Reconciler recounts counters from the records they summarize.
type Reconciler interface {
	health.Pinger

	Run(ctx context.Context) error
}

// Meta is reported by Ping.
type Meta struct {
	LastRun   time.Time `json:"lastRun"`
	LastDrift int64     `json:"lastDrift"`
}

type reconciler struct {
	s        storage.Storage
	interval time.Duration

	mu   sync.RWMutex
	meta Meta
}

// New returns Reconciler which recounts counters every interval.
func New(s storage.Storage, interval time.Duration) Reconciler {
	return &reconciler{
		s:        s,
		interval: interval,
	}
}

func (r *reconciler) Name() string {
	return "reconciler"
}

func (r *reconciler) Ping(ctx context.Context) (interface{}, error) {
	if err := r.s.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping storage: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.meta, nil
}

// Run recounts immediately and then every interval until ctx is done.
// Failed runs are logged, the loop keeps going.
func (r *reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		if err := r.reconcile(ctx); err != nil {
			log.WithError(err).Error("failed to reconcile counters")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}

	return nil
}

func (r *reconciler) reconcile(ctx context.Context) error {
	d, err := r.s.RecountCounters(ctx)
	if err != nil {
		return fmt.Errorf("failed to recount counters: %w", err)
	}

	r.mu.Lock()
	r.meta = Meta{LastRun: time.Now().UTC(), LastDrift: d.Total()}
	r.mu.Unlock()

	if d.Total() == 0 {
		log.Debug("counters are consistent")
		return nil
	}

	log.WithField("drift", d.Total()).Warn("counters were corrected")
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		log.Debug(spew.Sdump(d))
	}

	return nil
}
