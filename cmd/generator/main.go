package main

import (
	"flag"
	"time"

	"github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	leftCount  = flag.Int("left_count", 1000, "number of left vertices")
	rightCount = flag.Int("right_count", 1000, "number of right vertices")
	edgeCount  = flag.Int("edge_count", 5000, "number of random edges")
	seed       = flag.Uint64("seed", 0, "rng seed, 0 means time-based")
	outFile    = flag.String("out", "./data/random_instance.graph", "output graph file")
)

// generates a random bipartite matching instance and writes it as a
// compressed graph file, for benchmarks and stress tests.
func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(s))

	graph, err := datastructure.NewBipartiteGraph(*leftCount, *rightCount)
	if err != nil {
		panic(err)
	}

	for i := 0; i < *edgeCount; i++ {
		u := rng.Intn(*leftCount) + 1
		v := rng.Intn(*rightCount) + 1
		if err := graph.AddEdge(u, v); err != nil {
			panic(err)
		}
	}

	if err := graph.WriteGraph(*outFile); err != nil {
		panic(err)
	}

	logger.Info("wrote random matching instance",
		zap.String("file", *outFile), zap.Uint64("seed", s),
		zap.Int("left_count", *leftCount), zap.Int("right_count", *rightCount),
		zap.Int("edge_count", *edgeCount))
}
