// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// Scheduler kinds accepted in [SchedulerConfig.Kind].
const (
	// SchedulerGo selects [GoScheduler].
	SchedulerGo = "go"
	// SchedulerTrampoline selects [Trampoline].
	SchedulerTrampoline = "trampoline"
)

// DefaultPayload is the step value used when a config omits one.
const DefaultPayload = "tick"

type (
	// Config describes a loop chain and the scheduler that drives it.
	// Embed it in your own app config struct for JSON unmarshaling, or
	// load it from a file with [LoadConfig], then call [Config.Build].
	Config struct {
		// Scheduler configures the scheduler the chain runs on.
		Scheduler SchedulerConfig `json:"scheduler"`
		// Loop configures the chain itself.
		Loop LoopConfig `json:"loop"`
		// Parallel is the number of identical chains to attach.
		// Optional. Values below 1 mean one chain.
		Parallel int `json:"parallel,omitempty"`
	}

	// SchedulerConfig holds the decoded scheduler settings.
	SchedulerConfig struct {
		// Kind selects the implementation: "go" or "trampoline".
		// Optional. Defaults to "go".
		Kind string `json:"kind,omitempty"`
		// Delay is the delay of each asynchronous step.
		// Optional. Parsed via time.ParseDuration. Example: "250ms".
		Delay string `json:"delay,omitempty"`
	}

	// LoopConfig holds the decoded chain settings.
	LoopConfig struct {
		// Label names the chain's first iteration.
		Label string `json:"label"`
		// Iterations is the loop counter; the chain completes
		// iterations+1 asynchronous steps. Must not be negative.
		Iterations int `json:"iterations"`
		// Payload is the value each step delivers.
		// Optional. Defaults to [DefaultPayload].
		Payload string `json:"payload,omitempty"`
	}
)

// LoadConfig reads a JSON configuration file and validates it eagerly so
// errors surface at load time rather than at Build.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ktor: read config: %w", err)
	}

	var cfg Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ktor: parse config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration's field combinations.
func (c *Config) Validate() error {
	switch c.Scheduler.Kind {
	case "", SchedulerGo, SchedulerTrampoline:
	default:
		return fmt.Errorf("ktor: unknown scheduler kind %q", c.Scheduler.Kind)
	}
	if c.Scheduler.Delay != "" {
		if _, err := time.ParseDuration(c.Scheduler.Delay); err != nil {
			return fmt.Errorf("ktor: scheduler.delay: %w", err)
		}
	}
	if c.Loop.Iterations < 0 {
		return fmt.Errorf("ktor: loop.iterations must not be negative, got %d", c.Loop.Iterations)
	}
	return nil
}

// Chains returns the number of chains to attach, at least one.
func (c *Config) Chains() int {
	if c.Parallel < 1 {
		return 1
	}
	return c.Parallel
}

// Build constructs the configured scheduler and the loop chain prototype.
// Additional options (hooks, a custom clock) are applied to the scheduler.
// Each chain from [Config.Chains] should consume its own copy of the
// returned LoopN; copies are independent until consumed.
func (c *Config) Build(opts ...Option) (Scheduler, LoopN[Unit], error) {
	var zero LoopN[Unit]

	if err := c.Validate(); err != nil {
		return nil, zero, err
	}

	var delay time.Duration
	if c.Scheduler.Delay != "" {
		// Validated above.
		delay, _ = time.ParseDuration(c.Scheduler.Delay)
	}

	var s Scheduler
	switch c.Scheduler.Kind {
	case "", SchedulerGo:
		s = NewGoScheduler(opts...)
	case SchedulerTrampoline:
		s = NewTrampoline(opts...)
	}

	payload := c.Loop.Payload
	if payload == "" {
		payload = DefaultPayload
	}

	step := NewAsync[Unit](s, delay, payload)
	return s, NewLoopN(step, c.Loop.Label, c.Loop.Iterations), nil
}
