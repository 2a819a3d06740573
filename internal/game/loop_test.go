package game

import (
	"testing"
	"time"
)

func TestFrameDelay(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		limit   int
		want    time.Duration
	}{
		{"no limit", time.Millisecond, 0, 0},
		{"negative limit", time.Millisecond, -1, 0},
		{"under budget", 4 * time.Millisecond, 100, 6 * time.Millisecond},
		{"exactly on budget", 10 * time.Millisecond, 100, 0},
		{"over budget", 25 * time.Millisecond, 100, 0},
	}
	for _, c := range cases {
		if got := frameDelay(c.elapsed, c.limit); got != c.want {
			t.Errorf("%s: frameDelay(%v, %d) = %v, want %v",
				c.name, c.elapsed, c.limit, got, c.want)
		}
	}
}
