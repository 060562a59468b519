package board

// Perft counts leaf nodes reachable in exactly depth plies from pos,
// generating only legal moves at each ply. Used by tests to validate the
// move generator against known node counts.
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateLegalMoves(pos) {
		var st MoveState
		pos.MakeMove(m, &st)
		nodes += Perft(pos, depth-1)
		pos.UndoMove(m, &st)
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the subtree node count at
// depth-1 — useful for diagnosing move-generation bugs by comparing
// per-move counts against a reference engine.
func PerftDivide(pos *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth == 0 {
		return result
	}
	for _, m := range GenerateLegalMoves(pos) {
		var st MoveState
		pos.MakeMove(m, &st)
		result[m] = Perft(pos, depth-1)
		pos.UndoMove(m, &st)
	}
	return result
}
