// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/ktor"
)

func TestAwaitDeliversValue(t *testing.T) {
	s := ktor.NewGoScheduler()
	chain := ktor.NewBind[ktor.Unit, int, int](
		ktor.NewAsync[ktor.Unit](s, time.Millisecond, 21),
		func(x int) ktor.Continuator[ktor.Unit, int] {
			return ktor.NewReturn[ktor.Unit](x * 2)
		},
	)

	got, err := ktor.Await[int](context.Background(), chain, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestAwaitSynchronousChain(t *testing.T) {
	got, err := ktor.Await[string](context.Background(), ktor.NewReturn[ktor.Unit]("now"), time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "now" {
		t.Fatalf("got %q, want %q", got, "now")
	}
}

func TestAwaitTimeout(t *testing.T) {
	s := ktor.NewGoScheduler()
	slow := ktor.NewAsync[ktor.Unit](s, time.Hour, "late")

	_, err := ktor.Await[string](context.Background(), slow, 10*time.Millisecond)
	if !errors.Is(err, ktor.ErrAwaitTimeout) {
		t.Fatalf("got error %v, want ErrAwaitTimeout", err)
	}
}

func TestAwaitUndrivenTrampolineTimesOut(t *testing.T) {
	tr := ktor.NewTrampoline()
	queued := ktor.NewAsync[ktor.Unit](tr, 0, 1)

	_, err := ktor.Await[int](context.Background(), queued, 10*time.Millisecond)
	if !errors.Is(err, ktor.ErrAwaitTimeout) {
		t.Fatalf("got error %v, want ErrAwaitTimeout", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("queue length %d, want 1", tr.Len())
	}
}

func TestAwaitParentCancelled(t *testing.T) {
	s := ktor.NewGoScheduler()
	slow := ktor.NewAsync[ktor.Unit](s, time.Hour, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := ktor.Await[int](ctx, slow, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want context.Canceled", err)
	}
}

func TestAwaitContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ktor.Await[int](ctx, ktor.NewReturn[ktor.Unit](1), time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want context.Canceled", err)
	}
}
