// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/ktor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"scheduler": {"kind": "trampoline", "delay": "5ms"},
		"loop": {"label": "Loop: ", "iterations": 4, "payload": "Data from async"},
		"parallel": 2
	}`)

	cfg, err := ktor.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scheduler.Kind != ktor.SchedulerTrampoline {
		t.Fatalf("kind %q, want %q", cfg.Scheduler.Kind, ktor.SchedulerTrampoline)
	}
	if cfg.Scheduler.Delay != "5ms" {
		t.Fatalf("delay %q, want %q", cfg.Scheduler.Delay, "5ms")
	}
	if cfg.Loop.Label != "Loop: " || cfg.Loop.Iterations != 4 {
		t.Fatalf("loop %+v, want label %q iterations 4", cfg.Loop, "Loop: ")
	}
	if cfg.Loop.Payload != "Data from async" {
		t.Fatalf("payload %q, want %q", cfg.Loop.Payload, "Data from async")
	}
	if cfg.Chains() != 2 {
		t.Fatalf("chains %d, want 2", cfg.Chains())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := ktor.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("error %q lacks read context", err)
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"scheduler": `)
	_, err := ktor.LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("error %q lacks parse context", err)
	}
}

func TestLoadConfigUnknownKind(t *testing.T) {
	path := writeConfig(t, `{"scheduler": {"kind": "quantum"}, "loop": {"label": "x", "iterations": 1}}`)
	_, err := ktor.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "unknown scheduler kind") {
		t.Fatalf("error %v, want unknown scheduler kind", err)
	}
}

func TestLoadConfigBadDelay(t *testing.T) {
	path := writeConfig(t, `{"scheduler": {"delay": "soon"}, "loop": {"label": "x", "iterations": 1}}`)
	_, err := ktor.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "scheduler.delay") {
		t.Fatalf("error %v, want scheduler.delay context", err)
	}
}

func TestLoadConfigNegativeIterations(t *testing.T) {
	path := writeConfig(t, `{"loop": {"label": "x", "iterations": -1}}`)
	_, err := ktor.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "iterations") {
		t.Fatalf("error %v, want iterations context", err)
	}
}

func TestConfigChainsDefault(t *testing.T) {
	cfg := ktor.Config{}
	if cfg.Chains() != 1 {
		t.Fatalf("chains %d, want 1", cfg.Chains())
	}
}

func TestConfigBuildDefaultsToGoScheduler(t *testing.T) {
	cfg := ktor.Config{Loop: ktor.LoopConfig{Label: "d", Iterations: 0}}
	s, loop, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gs, ok := s.(*ktor.GoScheduler)
	if !ok {
		t.Fatalf("scheduler %T, want *ktor.GoScheduler", s)
	}

	done := make(chan string, 1)
	ktor.Attach[ktor.Unit, string](loop, func(v string) ktor.Unit {
		done <- v
		return ktor.Unit{}
	})
	gs.Wait()

	select {
	case v := <-done:
		if v != ktor.LoopDone {
			t.Fatalf("got %q, want %q", v, ktor.LoopDone)
		}
	default:
		t.Fatal("no delivery after Wait")
	}
}

func TestConfigBuildTrampoline(t *testing.T) {
	cfg := ktor.Config{
		Scheduler: ktor.SchedulerConfig{Kind: ktor.SchedulerTrampoline},
		Loop:      ktor.LoopConfig{Label: "t", Iterations: 2},
	}
	s, loop, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr, ok := s.(*ktor.Trampoline)
	if !ok {
		t.Fatalf("scheduler %T, want *ktor.Trampoline", s)
	}

	var got string
	ktor.Attach[ktor.Unit, string](loop, func(v string) ktor.Unit {
		got = v
		return ktor.Unit{}
	})
	if n := tr.Drain(); n != 3 {
		t.Fatalf("drained %d, want 3", n)
	}
	if got != ktor.LoopDone {
		t.Fatalf("got %q, want %q", got, ktor.LoopDone)
	}
}

func TestConfigBuildStepDefaults(t *testing.T) {
	cfg := ktor.Config{
		Scheduler: ktor.SchedulerConfig{Kind: ktor.SchedulerTrampoline},
		Loop:      ktor.LoopConfig{Label: "p", Iterations: 0},
	}
	_, loop, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loop.Step.Value != ktor.DefaultPayload {
		t.Fatalf("payload %q, want %q", loop.Step.Value, ktor.DefaultPayload)
	}
}

func TestConfigBuildRejectsInvalid(t *testing.T) {
	cfg := ktor.Config{Scheduler: ktor.SchedulerConfig{Kind: "quantum"}}
	if _, _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
