package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/logger"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
	"go.uber.org/zap"
)

var (
	inputFile = flag.String("input", "", "edge-list file (\"nLeft nRight nEdges\" header, then one \"u v\" line per edge); empty means stdin")
	graphFile = flag.String("graph", "", "compressed .graph file written by the generator; overrides -input")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	var graph *datastructure.BipartiteGraph

	if *graphFile != "" {
		graph, err = datastructure.ReadGraph(*graphFile)
		if err != nil {
			logger.Fatal("cannot read graph file", zap.String("file", *graphFile), zap.Error(err))
		}
	} else {
		in := os.Stdin
		if *inputFile != "" {
			in, err = os.Open(*inputFile)
			if err != nil {
				logger.Fatal("cannot open input file", zap.String("file", *inputFile), zap.Error(err))
			}
			defer in.Close()
		}

		graph, err = readEdgeList(in, logger)
		if err != nil {
			logger.Fatal("cannot parse edge list", zap.Error(err))
		}
	}

	for _, re := range graph.RejectedEdges() {
		logger.Warn("dropped out-of-range edge", zap.Int("left", re.U), zap.Int("right", re.V))
	}

	hk := matcher.NewHopcroftKarp(graph)
	size := hk.ComputeMaximumMatching()

	fmt.Printf("maximum matching size: %d\n", size)
	for _, pair := range hk.MatchedPairs() {
		fmt.Printf("  left %2d  <->  right %2d\n", pair.Left, pair.Right)
	}
}

func readEdgeList(in io.Reader, logger *zap.Logger) (*datastructure.BipartiteGraph, error) {
	br := bufio.NewReader(in)

	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	ff := strings.Fields(line)
	if len(ff) != 3 {
		return nil, fmt.Errorf("header must be \"nLeft nRight nEdges\", got %q", line)
	}

	nLeft, err := strconv.Atoi(ff[0])
	if err != nil {
		return nil, err
	}
	nRight, err := strconv.Atoi(ff[1])
	if err != nil {
		return nil, err
	}
	nEdges, err := strconv.Atoi(ff[2])
	if err != nil {
		return nil, err
	}

	graph, err := datastructure.NewBipartiteGraph(nLeft, nRight)
	if err != nil {
		return nil, err
	}

	for i := 0; i < nEdges; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, fmt.Errorf("expected %d edges, got %d: %w", nEdges, i, err)
		}
		ff = strings.Fields(line)
		if len(ff) != 2 {
			return nil, fmt.Errorf("bad edge line %q", line)
		}

		u, err := strconv.Atoi(ff[0])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(ff[1])
		if err != nil {
			return nil, err
		}

		// skip-and-warn: a malformed edge never aborts the load
		if err := graph.AddEdge(u, v); err != nil {
			logger.Warn("dropping invalid edge", zap.Int("left", u), zap.Int("right", v))
		}
	}

	return graph, nil
}

func readLine(br *bufio.Reader) (string, error) {
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}
