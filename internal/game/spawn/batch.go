package spawn

// Batch tracks the live subset of a spawned batch and signals when every
// instance has been collected. The cleared callback fires synchronously
// inside ReportCollected, exactly once, on the >0 to 0 transition. A batch
// constructed with zero instances is cleared immediately so callers
// waiting on "all collected" are not blocked by a vacuous win.
type Batch struct {
	live      map[int]bool
	initial   int
	cleared   bool
	onCleared func()
}

// NewBatch creates a batch over the slot ids [0, count). onCleared may be
// nil for callers that poll Cleared instead.
func NewBatch(count int, onCleared func()) *Batch {
	b := &Batch{
		live:      make(map[int]bool, count),
		initial:   count,
		onCleared: onCleared,
	}
	for i := 0; i < count; i++ {
		b.live[i] = true
	}
	if count == 0 {
		b.clear()
	}
	return b
}

// ReportCollected removes an instance from the live set. Unknown or
// already-collected ids are ignored. It reports whether the id was live.
func (b *Batch) ReportCollected(id int) bool {
	if !b.live[id] {
		return false
	}
	delete(b.live, id)
	if len(b.live) == 0 && b.initial > 0 {
		b.clear()
	}
	return true
}

// Cleared reports whether every instance has been collected.
func (b *Batch) Cleared() bool {
	return b.cleared
}

// Live returns the number of uncollected instances.
func (b *Batch) Live() int {
	return len(b.live)
}

// Initial returns the batch size at creation.
func (b *Batch) Initial() int {
	return b.initial
}

// IsLive reports whether the given id is still uncollected.
func (b *Batch) IsLive(id int) bool {
	return b.live[id]
}

func (b *Batch) clear() {
	if b.cleared {
		return
	}
	b.cleared = true
	if b.onCleared != nil {
		b.onCleared()
	}
}
