package storage

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/avelinek/dayflow/internal/domain"
)

// DefaultSaveInterval is the minimum spacing between durable writes.
const DefaultSaveInterval = time.Second

// Worker coalesces save requests onto a dedicated goroutine so durable
// writes never block the mutation path. Requests arriving while a write is
// in flight (or during the throttle window) collapse into one write of the
// latest snapshot. Write failures are logged; the in-memory aggregate stays
// the source of truth until the next successful save.
type Worker struct {
	store    *Store
	log      zerolog.Logger
	interval time.Duration

	mu      sync.Mutex
	pending []byte

	kick chan struct{}
	quit chan struct{}
	done chan struct{}
}

// NewWorker starts a save worker. interval <= 0 uses DefaultSaveInterval.
func NewWorker(store *Store, log zerolog.Logger, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	w := &Worker{
		store:    store,
		log:      log,
		interval: interval,
		kick:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// RequestSave snapshots the aggregate and queues it for a durable write.
// Serialization happens on the caller's goroutine, while the caller still
// holds the single-writer lock, so the worker never reads live state.
func (w *Worker) RequestSave(state *domain.State) {
	doc, err := EncodeState(state)
	if err != nil {
		w.log.Error().Err(err).Msg("snapshot encode failed")
		return
	}

	w.mu.Lock()
	w.pending = doc
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Close flushes any pending snapshot and stops the worker.
func (w *Worker) Close() {
	close(w.quit)
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		select {
		case <-w.quit:
			w.writePending()
			return
		case <-w.kick:
		}

		w.writePending()

		// Throttle: at most one write per interval.
		select {
		case <-w.quit:
			w.writePending()
			return
		case <-time.After(w.interval):
		}
	}
}

func (w *Worker) writePending() {
	w.mu.Lock()
	doc := w.pending
	w.pending = nil
	w.mu.Unlock()

	if doc == nil {
		return
	}
	receipt, err := w.store.SaveDoc(doc, time.Now().UTC())
	if err != nil {
		w.log.Error().Err(err).Msg("state save failed")
		return
	}
	w.log.Debug().Int("bytes", receipt.Bytes).Time("saved_at", receipt.SavedAt).Msg("state saved")
}
