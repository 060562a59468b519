package search

import (
	"golang.org/x/exp/slices"

	"gambit/board"
)

// MaxPly bounds the killer table's per-ply array and the iterative-deepening
// loop's maximum depth.
const MaxPly = 128

const (
	ttMoveScore        = 1_000_000
	captureBase        = 200_000
	promotionBonus     = 100_000
	killerPrimaryScore = 90_000
	killerSecondScore  = 80_000
)

// killerTable and history are per-search-thread, never shared — a fresh
// one is built for each SearchRoot-equivalent call, matching this engine's
// "no move-ordering globals" rule.
type killerTable struct {
	moves [MaxPly][2]board.Move
}

func (k *killerTable) add(ply int, m board.Move) {
	if ply >= MaxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m board.Move) (primary, secondary bool) {
	if ply >= MaxPly {
		return false, false
	}
	return k.moves[ply][0] == m, k.moves[ply][1] == m
}

type historyTable struct {
	scores [64][64]int32
}

const historyCap = 1 << 14

func (h *historyTable) add(m board.Move, depth int) {
	bonus := int32(depth * depth)
	v := h.scores[m.From()][m.To()] + bonus
	if v > historyCap {
		v = historyCap
	}
	h.scores[m.From()][m.To()] = v
}

func (h *historyTable) get(m board.Move) int32 {
	return h.scores[m.From()][m.To()]
}

// mvvLva returns the most-valuable-victim/least-valuable-attacker score for
// a capturing move: victim value * 10 minus attacker value.
func mvvLva(m board.Move) int {
	return pieceValue[m.Captured()]*10 - pieceValue[m.Moved()]
}

// orderMoves sorts moves in place, highest-scoring first: TT move, then
// MVV/LVA captures and promotions, then killer and history-scored quiets.
func orderMoves(moves []board.Move, ttMove board.Move, killers *killerTable, history *historyTable, ply int) {
	type scored struct {
		m board.Move
		s int
	}
	tmp := make([]scored, len(moves))
	for i, m := range moves {
		tmp[i] = scored{m, scoreMove(m, ttMove, killers, history, ply)}
	}
	slices.SortFunc(tmp, func(a, b scored) bool { return a.s > b.s })
	for i, sc := range tmp {
		moves[i] = sc.m
	}
}

func scoreMove(m board.Move, ttMove board.Move, killers *killerTable, history *historyTable, ply int) int {
	if m == ttMove {
		return ttMoveScore
	}
	if m.IsCapture() || m.IsEnPassant() {
		score := captureBase + mvvLva(m)
		if m.IsPromotion() {
			score += promotionBonus
		}
		return score
	}
	if m.IsPromotion() {
		return promotionBonus
	}
	if primary, secondary := killers.isKiller(ply, m); primary {
		return killerPrimaryScore
	} else if secondary {
		return killerSecondScore
	}
	return int(history.get(m))
}
