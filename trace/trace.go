// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trace

import (
	"io"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"code.hybscloud.com/ktor"
)

// Kind labels which scheduler callback produced an [Event].
type Kind string

const (
	// KindSchedule marks acceptance of a completion by the scheduler.
	KindSchedule Kind = "schedule"
	// KindFire marks the start of a completion's continuation.
	KindFire Kind = "fire"
	// KindComplete marks the return of a completion's continuation.
	KindComplete Kind = "complete"
)

// Event is one recorded scheduler callback. Delay is set on schedule
// events, Elapsed on complete events; both are zero otherwise.
type Event struct {
	ID      uuid.UUID     `json:"id"`
	Kind    Kind          `json:"kind"`
	At      time.Time     `json:"at"`
	Delay   time.Duration `json:"delay,omitempty"`
	Elapsed time.Duration `json:"elapsed,omitempty"`
}

// Recorder accumulates scheduler events in append order.
// It is safe for concurrent use; schedulers may emit from any goroutine.
type Recorder struct {
	mu     sync.Mutex
	clock  ktor.Clock
	events []Event
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the clock used to timestamp events.
// The default is [ktor.RealClock].
func WithClock(c ktor.Clock) Option {
	return func(r *Recorder) { r.clock = c }
}

// NewRecorder returns an empty Recorder configured by opts.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{clock: ktor.RealClock{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hooks returns scheduler hooks that append to the recorder. Install
// them with [ktor.WithHooks] when constructing a scheduler.
func (r *Recorder) Hooks() ktor.Hooks {
	return ktor.Hooks{
		OnSchedule: func(id uuid.UUID, delay time.Duration) {
			r.append(Event{ID: id, Kind: KindSchedule, At: r.clock.Now(), Delay: delay})
		},
		OnFire: func(id uuid.UUID) {
			r.append(Event{ID: id, Kind: KindFire, At: r.clock.Now()})
		},
		OnComplete: func(id uuid.UUID, elapsed time.Duration) {
			r.append(Event{ID: id, Kind: KindComplete, At: r.clock.Now(), Elapsed: elapsed})
		},
	}
}

func (r *Recorder) append(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in append order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Len reports the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Count reports the number of recorded events of kind k.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Completions returns the event ids that have reached KindComplete, in
// completion order.
func (r *Recorder) Completions() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for _, e := range r.events {
		if e.Kind == KindComplete {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// WriteJSON encodes the recorded events as a JSON array to w.
func (r *Recorder) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(r.Events())
}

// MarshalJSON encodes the recorded events as a JSON array.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Events())
}
