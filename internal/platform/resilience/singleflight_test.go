package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_SharesInFlightCall(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32

	fn := func() (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "shared", nil
	}

	const workers = 16
	var shared atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, wasShared := g.Do("key", fn)
			if err != nil {
				t.Errorf("do: %v", err)
				return
			}
			if got, _ := v.(string); got != "shared" {
				t.Errorf("unexpected value %v", v)
			}
			if wasShared {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fn called %d times, want 1", got)
	}
	if shared.Load() == 0 {
		t.Fatal("expected at least one caller to share the in-flight result")
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var g SingleFlight

	a, err, _ := g.Do("a", func() (any, error) { return 1, nil })
	if err != nil || a != 1 {
		t.Fatalf("got %v, %v", a, err)
	}
	b, err, _ := g.Do("b", func() (any, error) { return 2, nil })
	if err != nil || b != 2 {
		t.Fatalf("got %v, %v", b, err)
	}
}

func TestSingleFlight_ErrorIsSharedThenForgotten(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// The failed call is not remembered; the next call runs fn again.
	v, err, _ := g.Do("k", func() (any, error) { return "ok", nil })
	if err != nil || v != "ok" {
		t.Fatalf("got %v, %v", v, err)
	}
}
