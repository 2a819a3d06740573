package spawn

import (
	"testing"
)

func TestBatchLifecycle(t *testing.T) {
	fired := 0
	b := NewBatch(3, func() { fired++ })

	if b.Cleared() {
		t.Error("new batch reports cleared")
	}
	if b.Live() != 3 || b.Initial() != 3 {
		t.Errorf("Live = %d, Initial = %d, want 3, 3", b.Live(), b.Initial())
	}

	if !b.ReportCollected(0) {
		t.Error("collecting a live id returned false")
	}
	if b.ReportCollected(0) {
		t.Error("double collection returned true")
	}
	if b.ReportCollected(99) {
		t.Error("unknown id returned true")
	}
	if b.Live() != 2 {
		t.Errorf("Live = %d, want 2", b.Live())
	}
	if fired != 0 {
		t.Errorf("cleared fired early, count %d", fired)
	}

	b.ReportCollected(1)
	b.ReportCollected(2)

	if !b.Cleared() {
		t.Error("batch not cleared after collecting everything")
	}
	if fired != 1 {
		t.Errorf("cleared fired %d times, want 1", fired)
	}

	// Late reports must not re-fire.
	b.ReportCollected(2)
	if fired != 1 {
		t.Errorf("cleared re-fired, count %d", fired)
	}
}

// A zero-count batch has nothing to collect, so it is cleared from the
// start and the callback fires during construction.
func TestBatchZeroCount(t *testing.T) {
	fired := 0
	b := NewBatch(0, func() { fired++ })

	if !b.Cleared() {
		t.Error("zero-count batch not cleared")
	}
	if fired != 1 {
		t.Errorf("cleared fired %d times, want 1", fired)
	}
}

func TestBatchNilCallback(t *testing.T) {
	b := NewBatch(1, nil)
	b.ReportCollected(0)
	if !b.Cleared() {
		t.Error("batch with nil callback not cleared")
	}
}

func TestBatchIsLive(t *testing.T) {
	b := NewBatch(2, nil)
	if !b.IsLive(0) || !b.IsLive(1) {
		t.Error("fresh ids not live")
	}
	b.ReportCollected(0)
	if b.IsLive(0) {
		t.Error("collected id still live")
	}
	if !b.IsLive(1) {
		t.Error("uncollected id not live")
	}
}
