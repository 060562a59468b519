package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gambit/board"
	"gambit/search"
)

func main() {
	depthFlag := flag.Int("depth", 10, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	threadsFlag := flag.Int("threads", 1, "number of search threads")
	timeFlag := flag.Int("timems", 0, "time limit in milliseconds (0 = none, rely on depth)")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}

	fmt.Printf("bench: fen=%q depth=%d repeat=%d threads=%d\n", fen, *depthFlag, *repeatFlag, *threadsFlag)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		var pos board.Position
		if err := board.LoadPosition(&pos, fen); err != nil {
			log.Fatalf("LoadPosition: %v", err)
		}

		tt := search.NewDefaultTranspositionTable()
		limits := search.SearchLimits{MaxDepth: *depthFlag, TimeMs: *timeFlag}

		iterStart := time.Now()
		result := search.Search(&pos, limits, tt, *threadsFlag)
		iterElapsed := time.Since(iterStart)

		fmt.Printf("iteration %d: bestmove %s score %d nodes %d time=%v\n",
			i+1, result.BestMove, result.Score, result.Nodes, iterElapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))
}
