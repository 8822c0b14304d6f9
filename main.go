package main

import (
	"fmt"

	"github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
)

func main() {
	graph, err := datastructure.NewBipartiteGraph(3, 3)
	if err != nil {
		panic(err)
	}
	for _, e := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {3, 3}} {
		if err := graph.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}
	err = graph.WriteGraph("./data/example.graph")
	if err != nil {
		panic(err)
	}
	graph, err = datastructure.ReadGraph("./data/example.graph")
	if err != nil {
		panic(err)
	}

	hk := matcher.NewHopcroftKarp(graph)
	fmt.Printf("maximum matching size: %d\n", hk.ComputeMaximumMatching())
}
