package inflight

import (
	"sync"
	"testing"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker("cart.add")

	if got := tr.Status("cart.add"); got != StatusInitial {
		t.Fatalf("initial status = %s, want INITIAL", got)
	}

	token := tr.Begin("cart.add")
	if got := tr.Status("cart.add"); got != StatusPending {
		t.Fatalf("status after Begin = %s, want PENDING", got)
	}
	if !tr.IsPending("cart.add") {
		t.Fatalf("IsPending = false, want true")
	}

	tr.Resolve(token)
	if got := tr.Status("cart.add"); got != StatusSuccess {
		t.Fatalf("status after Resolve = %s, want SUCCESS", got)
	}

	token = tr.Begin("cart.add")
	tr.Reject(token)
	if got := tr.Status("cart.add"); got != StatusError {
		t.Fatalf("status after Reject = %s, want ERROR", got)
	}

	// 终态可重新进入 PENDING
	tr.Begin("cart.add")
	if got := tr.Status("cart.add"); got != StatusPending {
		t.Fatalf("status after re-invoke = %s, want PENDING", got)
	}
}

func TestTrackerUnknownNameReadsInitial(t *testing.T) {
	tr := NewTracker("cart.add")
	if got := tr.Status("no-such-op"); got != StatusInitial {
		t.Fatalf("unknown op status = %s, want INITIAL", got)
	}
	if tr.IsPending("no-such-op") {
		t.Fatalf("unknown op IsPending = true, want false")
	}
}

func TestTrackerLastWriteWins(t *testing.T) {
	tr := NewTracker("cart.update")

	first := tr.Begin("cart.update")
	second := tr.Begin("cart.update")

	// 旧调用的结算必须被丢弃
	tr.Reject(first)
	if got := tr.Status("cart.update"); got != StatusPending {
		t.Fatalf("status after stale Reject = %s, want PENDING", got)
	}

	tr.Resolve(second)
	if got := tr.Status("cart.update"); got != StatusSuccess {
		t.Fatalf("status after latest Resolve = %s, want SUCCESS", got)
	}

	// 最新调用结算后，更旧的结算仍然无效
	tr.Resolve(first)
	if got := tr.Status("cart.update"); got != StatusSuccess {
		t.Fatalf("status after replayed stale Resolve = %s, want SUCCESS", got)
	}
}

func TestTrackerRapidInvocationsEndTerminal(t *testing.T) {
	tr := NewTracker("cart.add")

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			token := tr.Begin("cart.add")
			tr.Resolve(token)
		}()
	}
	wg.Wait()

	if got := tr.Status("cart.add"); !got.Terminal() {
		t.Fatalf("status after %d rapid invocations = %s, want terminal", n, got)
	}
}

func TestTrackerIsAnyPending(t *testing.T) {
	tr := NewTracker("cart.add", "cart.remove", "cart.clear")

	if tr.IsAnyPending("cart.add", "cart.remove", "cart.clear") {
		t.Fatalf("IsAnyPending on fresh tracker = true, want false")
	}

	token := tr.Begin("cart.remove")
	if !tr.IsAnyPending("cart.add", "cart.remove", "cart.clear") {
		t.Fatalf("IsAnyPending with one pending op = false, want true")
	}

	tr.Resolve(token)
	if tr.IsAnyPending("cart.add", "cart.remove", "cart.clear") {
		t.Fatalf("IsAnyPending after settle = true, want false")
	}
}

func TestTrackerSnapshot(t *testing.T) {
	tr := NewTracker("a", "b")
	tr.Resolve(tr.Begin("a"))

	snapshot := tr.Snapshot()
	if snapshot["a"] != StatusSuccess || snapshot["b"] != StatusInitial {
		t.Fatalf("snapshot = %v, want a=SUCCESS b=INITIAL", snapshot)
	}

	// 快照是拷贝，改写不影响跟踪器
	snapshot["b"] = StatusError
	if got := tr.Status("b"); got != StatusInitial {
		t.Fatalf("status after snapshot mutation = %s, want INITIAL", got)
	}
}
