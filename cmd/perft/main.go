// Command perft runs the perft node-count debugging tool against the
// starting position (or a FEN passed with -fen), to cross-check move
// generator correctness.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jorge1289/solomon/attacks"
	"github.com/jorge1289/solomon/board"
	"github.com/jorge1289/solomon/fen"
	"github.com/jorge1289/solomon/format"
	"github.com/jorge1289/solomon/internal/perft"
)

func main() {
	depth := flag.Int("depth", 1, "perft depth")
	fenStr := flag.String("fen", board.InitialFEN, "FEN of the root position")
	verbose := flag.Bool("verbose", false, "print per-move statistics")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")
	flag.Parse()

	attacks.Init()

	p, err := fen.Decode(*fenStr)
	if err != nil {
		log.Fatalf("decode FEN: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	start := time.Now()

	if *verbose {
		r := &perft.Result{}
		r.Nodes = perft.Verbose(p, *depth, r, true, func(move, nodes string) {
			log.Printf("%s %s", move, nodes)
		})
		elapsed := time.Since(start)

		log.Printf("\nRoot position:\n%s\n\t%s\n", format.Position(p), *fenStr)
		log.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d double_checks=%d checkmates=%d",
			*depth, r.Nodes, r.Captures, r.EPCaptures, r.Castles, r.Promotions, r.Checks, r.DoubleChecks, r.Checkmates)
		log.Printf("elapsed: %s", elapsed)
		return
	}

	nodes := perft.Count(p, *depth)
	elapsed := time.Since(start)
	log.Printf("nodes reached: %d", nodes)
	log.Printf("elapsed: %s", elapsed)
}
