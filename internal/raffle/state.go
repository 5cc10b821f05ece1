package raffle

// State is derived from persisted facts, never stored.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateEnded
	StateAwaitingRandomness
	StateDrawn
	StateClaimed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "notStarted"
	case StateInProgress:
		return "inProgress"
	case StateEnded:
		return "ended"
	case StateAwaitingRandomness:
		return "awaitingRandomness"
	case StateDrawn:
		return "drawn"
	case StateClaimed:
		return "claimed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StateFacts is the full input to state derivation. HasLedger is false once
// the entrants account has been closed.
type StateFacts struct {
	Claimed       bool
	HasRandomness bool
	URI           string
	HasLedger     bool
	Total         uint32
	Max           uint32
	StartTime     int64
	EndTime       int64
}

// DeriveState resolves the raffle state by fixed precedence, first match wins.
// The claimed && total == 0 branch is unreachable (an earlier rule already
// matches any claimed raffle) but is kept to mirror the deployed derivation.
func DeriveState(now int64, f StateFacts) State {
	switch {
	case !f.HasLedger && f.URI == "" && f.Claimed:
		return StateCancelled
	case f.Claimed:
		return StateClaimed
	case f.HasRandomness:
		return StateDrawn
	case f.URI != "":
		return StateAwaitingRandomness
	case f.Total >= f.Max:
		return StateEnded
	case f.Claimed && f.Total == 0:
		return StateCancelled
	case now < f.StartTime:
		return StateNotStarted
	case now >= f.EndTime:
		return StateEnded
	default:
		return StateInProgress
	}
}

// Facts assembles StateFacts for a raffle given its current ledger header, or
// nil when the ledger has been closed.
func (r *Raffle) Facts(total, max uint32, hasLedger bool) StateFacts {
	return StateFacts{
		Claimed:       r.Claimed,
		HasRandomness: len(r.Randomness) > 0,
		URI:           r.URI,
		HasLedger:     hasLedger,
		Total:         total,
		Max:           max,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}
