package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/bimatch/pkg/util"
)

var ErrBadGraphFile = errors.New("malformed graph file")

/*
WriteGraph. persists the bipartite graph to a bzip2-compressed text file.
format: one header line "nLeft nRight nEdges", then one "u v" line per edge
(1-based ids) in insertion order.
*/
func (g *BipartiteGraph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %d\n", g.nLeft, g.nRight, g.numEdges)

	for u := 0; u < g.nLeft; u++ {
		for _, v := range g.adj[u] {
			fmt.Fprintf(w, "%d %d\n", u+1, int(v)+1)
		}
	}

	return w.Flush()
}

/*
ReadGraph. reads a bipartite graph written by WriteGraph. edge lines with
out-of-range endpoints are dropped and counted through the graph's rejected
list instead of aborting the load.
*/
func ReadGraph(filename string) (*BipartiteGraph, error) {
	f, err := os.OpenFile(filename, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := readLine(br)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "graph file %s has no header", filename)
	}

	ff := strings.Fields(line)
	if len(ff) != 3 {
		return nil, util.WrapErrorf(ErrBadGraphFile, util.ErrBadParamInput,
			"graph file %s: header must be \"nLeft nRight nEdges\", got %q", filename, line)
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

	g, err := NewBipartiteGraph(nLeft, nRight)
	if err != nil {
		return nil, err
	}

	for i := 0; i < nEdges; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput,
				"graph file %s: expected %d edges, got %d", filename, nEdges, i)
		}
		ff = strings.Fields(line)
		if len(ff) != 2 {
			return nil, util.WrapErrorf(ErrBadGraphFile, util.ErrBadParamInput,
				"graph file %s: bad edge line %q", filename, line)
		}

		u, err := strconv.Atoi(ff[0])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(ff[1])
		if err != nil {
			return nil, err
		}

		// keep loading on out-of-range edges, the graph records them
		_ = g.AddEdge(u, v)
	}

	return g, nil
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
