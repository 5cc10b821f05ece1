package raffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveState(t *testing.T) {
	const now = int64(1000)

	open := StateFacts{
		HasLedger: true,
		Total:     10,
		Max:       100,
		StartTime: 500,
		EndTime:   2000,
	}

	tests := []struct {
		name     string
		mutate   func(f StateFacts) StateFacts
		expected State
	}{
		{
			name:     "in_progress",
			mutate:   func(f StateFacts) StateFacts { return f },
			expected: StateInProgress,
		},
		{
			name: "not_started",
			mutate: func(f StateFacts) StateFacts {
				f.StartTime = now + 1
				return f
			},
			expected: StateNotStarted,
		},
		{
			name: "ended_by_time",
			mutate: func(f StateFacts) StateFacts {
				f.EndTime = now
				return f
			},
			expected: StateEnded,
		},
		{
			name: "ended_by_sellout",
			mutate: func(f StateFacts) StateFacts {
				f.Total = f.Max
				return f
			},
			expected: StateEnded,
		},
		{
			name: "sellout_before_start_still_ended",
			mutate: func(f StateFacts) StateFacts {
				f.Total = f.Max
				f.StartTime = now + 1
				return f
			},
			expected: StateEnded,
		},
		{
			name: "awaiting_randomness",
			mutate: func(f StateFacts) StateFacts {
				f.EndTime = now
				f.URI = "archive://abc"
				return f
			},
			expected: StateAwaitingRandomness,
		},
		{
			name: "drawn",
			mutate: func(f StateFacts) StateFacts {
				f.EndTime = now
				f.URI = "archive://abc"
				f.HasRandomness = true
				return f
			},
			expected: StateDrawn,
		},
		{
			name: "claimed",
			mutate: func(f StateFacts) StateFacts {
				f.Claimed = true
				f.URI = "archive://abc"
				f.HasRandomness = true
				return f
			},
			expected: StateClaimed,
		},
		{
			name: "claimed_with_closed_ledger_but_uri_set",
			mutate: func(f StateFacts) StateFacts {
				f.Claimed = true
				f.HasLedger = false
				f.URI = "archive://abc"
				return f
			},
			expected: StateClaimed,
		},
		{
			name: "cancelled",
			mutate: func(f StateFacts) StateFacts {
				f.Claimed = true
				f.HasLedger = false
				f.URI = ""
				return f
			},
			expected: StateCancelled,
		},
		{
			name: "unbounded_never_sells_out",
			mutate: func(f StateFacts) StateFacts {
				f.Max = UnboundedTickets
				f.Total = UnboundedTickets - 1
				return f
			},
			expected: StateInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveState(now, tt.mutate(open)))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "notStarted", StateNotStarted.String())
	assert.Equal(t, "inProgress", StateInProgress.String())
	assert.Equal(t, "ended", StateEnded.String())
	assert.Equal(t, "awaitingRandomness", StateAwaitingRandomness.String())
	assert.Equal(t, "drawn", StateDrawn.String())
	assert.Equal(t, "claimed", StateClaimed.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
}

func TestMaxTicketsPerEntrant(t *testing.T) {
	tests := []struct {
		name     string
		pct      uint16
		max      uint32
		expected uint32
	}{
		{name: "full_allowance", pct: 10000, max: 100, expected: 100},
		{name: "ten_percent", pct: 1000, max: 100, expected: 10},
		{name: "floors_fraction", pct: 250, max: 101, expected: 2},
		{name: "rounds_to_zero", pct: 1, max: 50, expected: 0},
		{name: "no_overflow_on_unbounded", pct: 10000, max: UnboundedTickets, expected: UnboundedTickets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Raffle{MaxEntrantPct: tt.pct}
			assert.Equal(t, tt.expected, r.MaxTicketsPerEntrant(tt.max))
		})
	}
}
