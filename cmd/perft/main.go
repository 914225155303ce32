package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"github.com/nocturn9x/hobbes-chess-engine/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(b, *depth)
		moves := maps.Keys(div)
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		var total uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			total += div[m]
		}
		fmt.Printf("Total: %d\n", total)
		return
	}

	start := time.Now()
	nodes := board.Perft(b, *depth)
	elapsed := time.Since(start)
	fmt.Printf("depth %d\tnodes %d\ttime %s\tnps %.0f\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
