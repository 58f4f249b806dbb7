package worker

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type testJob struct {
	id   int
	fail bool
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	if j.fail {
		return &testResult{id: j.id, err: errors.New("job failed")}
	}
	return &testResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	for i := 0; i < 10; i++ {
		pool.Submit(&testJob{id: i})
	}
	results := pool.Wait()

	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}

	var ids []int
	for _, r := range results {
		ids = append(ids, r.(*testResult).id)
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i {
			t.Errorf("missing job %d", i)
			break
		}
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&testJob{id: 0})
	pool.Submit(&testJob{id: 1, fail: true})
	results := pool.Wait()

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	pool.Submit(&testJob{id: 0})
	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

type blockingJob struct{}

func (j *blockingJob) Execute(ctx context.Context) Result {
	<-ctx.Done()
	return &testResult{err: ctx.Err()}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(1)
	pool.Start()
	pool.Submit(&blockingJob{})

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("shutdown did not complete")
	}
}

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(1, 2)

	url := "http://example.com/data"
	if !l.Allow(url) || !l.Allow(url) {
		t.Errorf("burst of 2 should allow two immediate requests")
	}
	if l.Allow(url) {
		t.Errorf("third immediate request should be limited")
	}

	// Separate hosts have separate budgets.
	if !l.Allow("http://other.example.org/data") {
		t.Errorf("fresh host should be allowed")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetHostRate("example.com", 1000, 100)

	for i := 0; i < 50; i++ {
		if !l.Allow("http://example.com/") {
			t.Fatalf("raised limit rejected request %d", i)
		}
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	l := NewLimiter(0.001, 1)
	url := "http://slow.example.com/"
	l.Allow(url) // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, url); err == nil {
		t.Errorf("expected context error")
	}
}
