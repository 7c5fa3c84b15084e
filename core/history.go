package core

// ProbWildcard is the sentinel probability value that HistoryItem.Equal
// treats as "don't care" — used when testing whether (q, s) was visited
// before, irrespective of the probability with which the current branch
// was reached.
const ProbWildcard = 99.0

// HistoryItem records one step of the current AND/OR search path: the
// controller state entered, the environment state reached, and the local
// transition probability of the single step that led into this node (not
// the cumulative path probability — a caller that needs the latter
// multiplies consecutive P values itself, e.g. History.PathProbFrom).
type HistoryItem struct {
	Q ControllerState
	S EnvState
	P float64
}

// Equal reports whether two history items refer to the same (q, s) pair.
// A probability of ProbWildcard on either side matches any probability;
// this lets cycle detection ask "have we been at (q, s) before?" without
// caring about the arrival probability of either visit.
func (h HistoryItem) Equal(other HistoryItem) bool {
	if h.Q != other.Q || h.S != other.S {
		return false
	}
	return h.P == ProbWildcard || other.P == ProbWildcard || h.P == other.P
}

// History is the ordered sequence of HistoryItem describing the current
// AND/OR path from the search root. Its length is the current depth.
type History []HistoryItem

// Depth is the number of steps taken so far, i.e. len(h).
func (h History) Depth() int { return len(h) }

// Last returns the most recently pushed item. Callers must ensure
// len(h) > 0; Last panics on an empty history.
func (h History) Last() HistoryItem { return h[len(h)-1] }

// Push returns a new History with item appended. The receiver is left
// untouched so that callers (AND step, in particular) can safely pass a
// copy down to or_step without aliasing the caller's slice backing array.
func (h History) Push(item HistoryItem) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, item)
}

// Clone returns an independent copy of h.
func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}

// IndexOf returns the index of the first item equal (per Equal) to target,
// and whether one was found. Used by OR-step cycle detection.
func (h History) IndexOf(target HistoryItem) (int, bool) {
	for i, item := range h {
		if item.Equal(target) {
			return i, true
		}
	}
	return 0, false
}

// PathProbFrom returns the product of P over h[from+1 : len(h)], i.e. the
// probability of the path segment strictly after index `from` down to the
// end of the history. Used when folding a cycle back to a prior depth.
func (h History) PathProbFrom(from int) float64 {
	p := 1.0
	for i := from + 1; i < len(h); i++ {
		p *= h[i].P
	}
	return p
}

// MatchesCheckpointTop reports whether h equals top truncated to
// m = min(len(h), len(top)-1) entries. This is true only when len(h) == m
// and every one of the first m items matches; that distinguishes
// backtracking "left" (still inside the same AND node) from backtracking
// "up" (the search has unwound past it).
func (h History) MatchesCheckpointTop(top History) bool {
	m := len(top) - 1
	if len(h) < m {
		m = len(h)
	}
	if len(h) != m {
		return false
	}
	for i := 0; i < m; i++ {
		if !h[i].Equal(top[i]) {
			return false
		}
	}
	return true
}
