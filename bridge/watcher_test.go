package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mbertrand/latelog/backend"
)

func TestWatch_ActivatesWhenContextChanges(t *testing.T) {
	bk := &memBackend{}
	r := &stubResolver{bk: bk}
	src := &switchSource{ctx: backend.NewContext()}
	c := New(&Options{Resolver: r, Source: src.get, WatchMaxDelay: 10 * time.Millisecond})

	done := make(chan error, 1)
	go func() { done <- c.Watch(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	src.set(backend.NewContext())

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after the context changed")
	}
	if !c.Activated() {
		t.Error("Watch returned without activating")
	}
}

func TestWatch_ReturnsImmediatelyWhenActivated(t *testing.T) {
	bk := &memBackend{}
	c, _ := newTestCoordinator(bk)
	if !c.Activate(backend.NewContext()) {
		t.Fatal("Activate returned false")
	}
	if err := c.Watch(context.Background()); err != nil {
		t.Fatalf("Watch on an activated coordinator: %v", err)
	}
}

func TestWatch_ReturnsContextError(t *testing.T) {
	c, r := newTestCoordinator(nil)
	r.set(nil, backend.ErrUnavailable)
	c.opts.WatchMaxDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Watch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Watch: got %v, want context.Canceled", err)
	}
}
