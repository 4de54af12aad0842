// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trace records scheduler lifecycle events for the ktor library.
//
// Recorder turns ktor hook callbacks into an append-only event log that
// can be inspected in tests or exported as JSON. Events carry the
// completion's UUID, so the schedule, fire and complete entries of one
// completion can be correlated across a concurrent run.
package trace
