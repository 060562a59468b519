package search

import (
	"sync/atomic"
	"time"

	"gambit/board"
)

// SearchLimits bounds a call to Search. If TimeMs > 0 the deadline is
// now+TimeMs; if MaxDepth > 0 depth is capped; Infinite bypasses the depth
// cap (the caller must then supply a time limit or set StopPtr itself).
// History is an optional list of prior position hashes (oldest first, not
// including the position being searched) the caller has seen this game,
// used to score threefold repetitions as draws during search.
type SearchLimits struct {
	MaxDepth int
	TimeMs   int
	Infinite bool
	StopPtr  *atomic.Bool
	History  []uint64
}

func (l SearchLimits) deadline(start time.Time) (time.Time, bool) {
	if l.TimeMs <= 0 {
		return time.Time{}, false
	}
	return start.Add(time.Duration(l.TimeMs) * time.Millisecond), true
}

func (l SearchLimits) maxDepth() int {
	if l.Infinite || l.MaxDepth <= 0 {
		return MaxPly
	}
	if l.MaxDepth > MaxPly {
		return MaxPly
	}
	return l.MaxDepth
}

// SearchResult is what Search returns: the best move found, its score from
// the side-to-move's perspective, the depth that produced it, the total
// node count searched, and the principal variation.
type SearchResult struct {
	BestMove board.Move
	Score    int
	Depth    int
	Nodes    uint64
	PV       []board.Move
}
