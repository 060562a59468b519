package search

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"gambit/board"
)

const nullMoveMinDepth = 3

// searchThread holds everything one search worker needs that must not be
// shared with any other thread: its own position copy, killer and history
// tables, node counter, and repetition bookkeeping. The transposition
// table, stop flag, and deadline are shared and read (or, for the TT,
// written under its own internal locking).
type searchThread struct {
	pos         *board.Position
	tt          *TranspositionTable
	stop        *atomic.Bool
	deadline    time.Time
	hasDeadline bool

	killers    killerTable
	history    historyTable
	repetition map[uint64]int
	nodes      uint64
}

func newSearchThread(pos *board.Position, tt *TranspositionTable, stop *atomic.Bool, deadline time.Time, hasDeadline bool, baseRepetition map[uint64]int) *searchThread {
	rep := make(map[uint64]int, len(baseRepetition)+8)
	for k, v := range baseRepetition {
		rep[k] = v
	}
	return &searchThread{
		pos:         pos,
		tt:          tt,
		stop:        stop,
		deadline:    deadline,
		hasDeadline: hasDeadline,
		repetition:  rep,
	}
}

// tick increments the node counter and, every 4096 nodes, samples the
// clock against the deadline to decide whether to raise the shared stop
// flag. Returns the current value of the stop flag.
func (t *searchThread) tick() bool {
	t.nodes++
	if t.nodes&4095 == 0 && t.hasDeadline && time.Now().After(t.deadline) {
		t.stop.Store(true)
	}
	return t.stop.Load()
}

// isRepeated reports whether hash has already occurred at least twice
// before now, i.e. the current occurrence would be the third. Callers
// increment t.repetition[hash] for the current position before recursing,
// so a plain twofold repeat (one prior occurrence plus the current one)
// reads back as 2, not 3 — checking >= 3 is what makes this a threefold
// test rather than a twofold one.
func (t *searchThread) isRepeated(hash uint64) bool {
	return t.repetition[hash] >= 3
}

// alphaBeta is fail-soft negamax with transposition-table probing/storing,
// null-move pruning, and TT-move/MVV-LVA/killer/history move ordering.
func (t *searchThread) alphaBeta(depth, alpha, beta, ply int) int {
	if t.tick() {
		return Evaluate(t.pos)
	}

	pos := t.pos
	if ply > 0 && (t.isRepeated(pos.Hash) || pos.HalfmoveClock >= 100) {
		return 0
	}

	if depth <= 0 {
		return t.quiescence(alpha, beta, ply)
	}

	origAlpha, origBeta := alpha, beta

	found, ttDepth, ttScore, ttBound, ttMove := t.tt.Probe(pos.Hash, ply)
	if found && ttDepth >= depth {
		switch ttBound {
		case BoundExact:
			return ttScore
		case BoundLower:
			if ttScore > alpha {
				alpha = ttScore
			}
		case BoundUpper:
			if ttScore < beta {
				beta = ttScore
			}
		}
		if alpha >= beta {
			return ttScore
		}
	}

	inCheck := pos.InCheck(pos.SideToMove)
	if !inCheck && depth >= nullMoveMinDepth && hasNonPawnMaterial(pos, pos.SideToMove) {
		r := 2
		if depth >= 6 {
			r = 3
		}
		var nst board.NullMoveState
		pos.MakeNullMove(&nst)
		score := -t.alphaBeta(depth-1-r, -beta, -beta+1, ply+1)
		pos.UndoNullMove(&nst)
		if score >= beta {
			return score
		}
	}

	moves := board.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}
	orderMoves(moves, ttMove, &t.killers, &t.history, ply)

	bestScore := -MateScore - 1
	bestMove := moves[0]
	for _, m := range moves {
		var st board.MoveState
		pos.MakeMove(m, &st)
		t.repetition[pos.Hash]++
		score := -t.alphaBeta(depth-1, -beta, -alpha, ply+1)
		t.repetition[pos.Hash]--
		pos.UndoMove(m, &st)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsTactical() {
				t.killers.add(ply, m)
				t.history.add(m, depth)
			}
			break
		}
	}

	bound := BoundExact
	switch {
	case bestScore <= origAlpha:
		bound = BoundUpper
	case bestScore >= origBeta:
		bound = BoundLower
	}
	t.tt.Store(pos.Hash, depth, bestScore, bound, bestMove, ply)

	return bestScore
}

// quiescence extends search along tactical lines (captures, promotions, en
// passant) past the nominal depth limit to avoid a misleading leaf
// evaluation in the middle of an exchange.
func (t *searchThread) quiescence(alpha, beta, ply int) int {
	if t.tick() {
		return Evaluate(t.pos)
	}

	pos := t.pos
	inCheck := pos.InCheck(pos.SideToMove)

	var bestScore int
	if !inCheck {
		standPat := Evaluate(pos)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
		bestScore = standPat
	} else {
		bestScore = -MateScore - 1
	}

	moves := board.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}
	if !inCheck {
		moves = filterTactical(moves)
	}
	orderMoves(moves, board.NoMove, &t.killers, &t.history, ply)

	for _, m := range moves {
		var st board.MoveState
		pos.MakeMove(m, &st)
		score := -t.quiescence(-beta, -alpha, ply+1)
		pos.UndoMove(m, &st)

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore
}

func filterTactical(moves []board.Move) []board.Move {
	out := moves[:0]
	for _, m := range moves {
		if m.IsTactical() {
			out = append(out, m)
		}
	}
	return out
}

func hasNonPawnMaterial(pos *board.Position, side board.Color) bool {
	return pos.PieceBB[side][board.Knight]|pos.PieceBB[side][board.Bishop]|
		pos.PieceBB[side][board.Rook]|pos.PieceBB[side][board.Queen] != 0
}

// Search runs iterative deepening from depth 1 up to limits' cap (or
// unbounded if infinite), returning the best result from the last fully
// completed depth. threads <= 1 runs purely sequentially; threads > 1
// dispatches root moves to worker goroutines pulling from a shared atomic
// counter, each holding its own Position copy.
func Search(pos *board.Position, limits SearchLimits, tt *TranspositionTable, threads int) SearchResult {
	if threads < 1 {
		threads = 1
	}
	stop := limits.StopPtr
	if stop == nil {
		stop = new(atomic.Bool)
	}

	start := time.Now()
	deadline, hasDeadline := limits.deadline(start)
	maxDepth := limits.maxDepth()

	rootMoves := board.GenerateLegalMoves(pos)
	if len(rootMoves) == 0 {
		score := 0
		if pos.InCheck(pos.SideToMove) {
			score = -MateScore
		}
		return SearchResult{BestMove: board.NoMove, Score: score, Depth: 0}
	}

	baseRepetition := make(map[uint64]int, len(limits.History)+1)
	for _, h := range limits.History {
		baseRepetition[h]++
	}
	baseRepetition[pos.Hash]++

	var result SearchResult
	result.BestMove = rootMoves[0]

	var totalNodes uint64
	for depth := 1; depth <= maxDepth; depth++ {
		if stop.Load() {
			break
		}
		if hasDeadline && time.Now().After(deadline) {
			break
		}

		var move board.Move
		var score int
		var nodes uint64
		var completed bool

		if threads <= 1 || len(rootMoves) <= 1 {
			move, score, nodes, completed = searchRootSequential(pos, rootMoves, tt, stop, deadline, hasDeadline, baseRepetition, depth)
		} else {
			move, score, nodes, completed = searchRootParallel(pos, rootMoves, tt, stop, deadline, hasDeadline, baseRepetition, depth, threads)
		}
		totalNodes += nodes

		if !completed && depth > 1 {
			break
		}

		result = SearchResult{
			BestMove: move,
			Score:    score,
			Depth:    depth,
			Nodes:    totalNodes,
			PV:       buildPV(pos, tt, depth),
		}
		fmt.Printf("info depth %d score cp %d nodes %d pv %s\n", depth, score, totalNodes, pvString(result.PV))

		if !completed {
			break
		}
	}
	return result
}

func searchRootSequential(pos *board.Position, rootMoves []board.Move, tt *TranspositionTable, stop *atomic.Bool, deadline time.Time, hasDeadline bool, baseRepetition map[uint64]int, depth int) (board.Move, int, uint64, bool) {
	t := newSearchThread(pos, tt, stop, deadline, hasDeadline, baseRepetition)

	_, _, _, _, ttMove := tt.Probe(pos.Hash, 0)
	moves := append([]board.Move(nil), rootMoves...)
	orderMoves(moves, ttMove, &t.killers, &t.history, 0)

	alpha, beta := -MateScore-1, MateScore+1
	bestScore := alpha
	bestMove := moves[0]

	for _, m := range moves {
		var st board.MoveState
		pos.MakeMove(m, &st)
		t.repetition[pos.Hash]++
		score := -t.alphaBeta(depth-1, -beta, -alpha, 1)
		t.repetition[pos.Hash]--
		pos.UndoMove(m, &st)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	tt.Store(pos.Hash, depth, bestScore, BoundExact, bestMove, 0)
	return bestMove, bestScore, t.nodes, !stop.Load()
}

func searchRootParallel(pos *board.Position, rootMoves []board.Move, tt *TranspositionTable, stop *atomic.Bool, deadline time.Time, hasDeadline bool, baseRepetition map[uint64]int, depth, threads int) (board.Move, int, uint64, bool) {
	_, _, _, _, ttMove := tt.Probe(pos.Hash, 0)
	moves := append([]board.Move(nil), rootMoves...)
	mainKillers := &killerTable{}
	mainHistory := &historyTable{}
	orderMoves(moves, ttMove, mainKillers, mainHistory, 0)

	var index atomic.Int64
	var mu sync.Mutex
	bestScore := -MateScore - 1
	bestMove := moves[0]
	var totalNodes uint64

	g := new(errgroup.Group)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			workerPos := pos.Clone()
			t := newSearchThread(&workerPos, tt, stop, deadline, hasDeadline, baseRepetition)
			for {
				i := int(index.Add(1)) - 1
				if i >= len(moves) {
					break
				}
				m := moves[i]
				var st board.MoveState
				workerPos.MakeMove(m, &st)
				t.repetition[workerPos.Hash]++
				score := -t.alphaBeta(depth-1, -MateScore-1, MateScore+1, 1)
				t.repetition[workerPos.Hash]--
				workerPos.UndoMove(m, &st)

				mu.Lock()
				if score > bestScore {
					bestScore = score
					bestMove = m
				}
				mu.Unlock()
			}
			mu.Lock()
			totalNodes += t.nodes
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	tt.Store(pos.Hash, depth, bestScore, BoundExact, bestMove, 0)
	return bestMove, bestScore, totalNodes, !stop.Load()
}

// buildPV threads the principal variation forward from pos by repeatedly
// following the transposition table's stored best move, stopping at a
// non-exact entry, a missing entry, a move that's no longer legal, or a
// repeated position.
func buildPV(pos *board.Position, tt *TranspositionTable, maxLen int) []board.Move {
	work := pos.Clone()
	pv := make([]board.Move, 0, maxLen)
	seen := map[uint64]bool{work.Hash: true}

	for i := 0; i < maxLen; i++ {
		found, _, _, bound, move := tt.Probe(work.Hash, 0)
		if !found || move == board.NoMove || bound != BoundExact {
			break
		}
		legal := false
		for _, lm := range board.GenerateLegalMoves(&work) {
			if lm == move {
				legal = true
				break
			}
		}
		if !legal {
			break
		}
		var st board.MoveState
		work.MakeMove(move, &st)
		if seen[work.Hash] {
			break
		}
		seen[work.Hash] = true
		pv = append(pv, move)
	}
	return pv
}

func pvString(pv []board.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
