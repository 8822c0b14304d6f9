package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadGraphRoundTrip(t *testing.T) {
	graph, err := NewBipartiteGraph(3, 3)
	require.NoError(t, err)
	for _, e := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {3, 3}} {
		require.NoError(t, graph.AddEdge(e[0], e[1]))
	}

	file := filepath.Join(t.TempDir(), "roundtrip.graph")
	require.NoError(t, graph.WriteGraph(file))

	got, err := ReadGraph(file)
	require.NoError(t, err)

	assert.Equal(t, graph.LeftCount(), got.LeftCount())
	assert.Equal(t, graph.RightCount(), got.RightCount())
	assert.Equal(t, graph.NumberOfEdges(), got.NumberOfEdges())
	for u := Index(0); u < Index(graph.LeftCount()); u++ {
		assert.Equal(t, graph.NeighborsOf(u), got.NeighborsOf(u))
	}
}

func writeRawGraphFile(t *testing.T, lines []string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "raw.graph")
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	defer bz.Close()

	w := bufio.NewWriter(bz)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	require.NoError(t, w.Flush())
	return file
}

func TestReadGraphSkipsOutOfRangeEdges(t *testing.T) {
	file := writeRawGraphFile(t, []string{
		"2 2 4",
		"1 1",
		"0 2", // left id 0 is invalid
		"2 9", // right id out of range
		"2 2",
	})

	graph, err := ReadGraph(file)
	require.NoError(t, err)

	assert.Equal(t, 2, graph.NumberOfEdges())
	assert.Len(t, graph.RejectedEdges(), 2)
	assert.True(t, graph.HasEdge(1, 1))
	assert.True(t, graph.HasEdge(2, 2))
	assert.False(t, graph.HasEdge(2, 9))
}

func TestReadGraphBadHeader(t *testing.T) {
	file := writeRawGraphFile(t, []string{"2 2"})

	_, err := ReadGraph(file)
	require.Error(t, err)
}

func TestReadGraphTruncatedEdges(t *testing.T) {
	file := writeRawGraphFile(t, []string{
		"2 2 3",
		"1 1",
	})

	_, err := ReadGraph(file)
	require.Error(t, err)
}
