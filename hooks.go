// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

import (
	"time"

	"github.com/google/uuid"
)

// Hooks holds optional callbacks for scheduler lifecycle events. All
// fields are nil by default; callers set only the hooks they care about.
// Once handed to a scheduler, a Hooks value must not be mutated — emit
// methods read the function fields without synchronisation, which is safe
// as long as the struct is read-only after initialisation.
//
// Schedulers invoke hooks inline on the scheduling and completion paths
// and from the completion's own execution context, so callbacks must be
// fast and safe for concurrent use.
type Hooks struct {
	// OnSchedule fires when a completion is accepted by the scheduler,
	// before any delay has elapsed. id identifies the completion across
	// all three callbacks.
	OnSchedule func(id uuid.UUID, delay time.Duration)
	// OnFire fires on the completion's execution context immediately
	// before the continuation runs.
	OnFire func(id uuid.UUID)
	// OnComplete fires after the continuation returns, with the time the
	// continuation itself took to run.
	OnComplete func(id uuid.UUID, elapsed time.Duration)
}

func (h *Hooks) emitSchedule(id uuid.UUID, delay time.Duration) {
	if h.OnSchedule != nil {
		h.OnSchedule(id, delay)
	}
}

func (h *Hooks) emitFire(id uuid.UUID) {
	if h.OnFire != nil {
		h.OnFire(id)
	}
}

func (h *Hooks) emitComplete(id uuid.UUID, elapsed time.Duration) {
	if h.OnComplete != nil {
		h.OnComplete(id, elapsed)
	}
}
