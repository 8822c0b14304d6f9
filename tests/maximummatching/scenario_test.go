package maximummatching

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	da "github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
)

/*
scenario tests: each testdata instance is a plain edge-list file
("nLeft nRight nEdges" header, one "u v" line per edge) with the known
maximum matching size in the matching .ans file. out-of-range edge lines
are deliberately present in some instances to exercise skip-and-warn.
*/

func solveInstance(t *testing.T, name string) {
	var (
		err  error
		line string
		f    *os.File
	)

	base := filepath.Join("testdata", name)

	f, err = os.OpenFile(base+".in", os.O_RDONLY, 0644)
	if err != nil {
		t.Fatalf("could not open test file: %v", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)

	line, err = readLine(br)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	ff := fields(line)

	nLeft, err := strconv.Atoi(ff[0])
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	nRight, err := strconv.Atoi(ff[1])
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	nEdges, err := strconv.Atoi(ff[2])
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	graph, err := da.NewBipartiteGraph(nLeft, nRight)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for i := 0; i < nEdges; i++ {
		line, err = readLine(br)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		ff = fields(line)

		u, err := strconv.Atoi(ff[0])
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		v, err := strconv.Atoi(ff[1])
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		// a bad edge is dropped, the rest of the instance still loads
		if addErr := graph.AddEdge(u, v); addErr != nil {
			t.Logf("dropped out-of-range edge (%d, %d)", u, v)
		}
	}

	want := readExpectedSize(t, base+".ans")

	hk := matcher.NewHopcroftKarp(graph)
	got := hk.ComputeMaximumMatching()

	if got != want {
		t.Errorf("maximum matching size: got %d, want %d", got, want)
	}

	checkMatchingIsValid(t, graph, hk)
}

func checkMatchingIsValid(t *testing.T, graph *da.BipartiteGraph, hk *matcher.HopcroftKarp) {
	seenLeft := make(map[int]bool)
	seenRight := make(map[int]bool)

	for _, pair := range hk.MatchedPairs() {
		if !graph.HasEdge(pair.Left, pair.Right) {
			t.Errorf("matched pair (%d, %d) is not an edge", pair.Left, pair.Right)
		}
		if seenLeft[pair.Left] || seenRight[pair.Right] {
			t.Errorf("vertex reused in pair (%d, %d)", pair.Left, pair.Right)
		}
		seenLeft[pair.Left] = true
		seenRight[pair.Right] = true
	}
}

func readExpectedSize(t *testing.T, ansFile string) int {
	f, err := os.OpenFile(ansFile, os.O_RDONLY, 0644)
	if err != nil {
		t.Fatalf("could not open answer file: %v", err)
	}
	defer f.Close()

	line, err := readLine(bufio.NewReader(f))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return want
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

func fields(line string) []string {
	return strings.Fields(line)
}

func TestClassic(t *testing.T) {
	solveInstance(t, "classic")
}

func TestJobAssignment(t *testing.T) {
	solveInstance(t, "jobassignment")
}

func TestStar(t *testing.T) {
	solveInstance(t, "star")
}

func TestWithBadEdges(t *testing.T) {
	solveInstance(t, "withbadedges")
}
