package datastructure

import (
	"errors"

	"github.com/lintang-b-s/bimatch/pkg/util"
)

type Index uint32

var (
	ErrEdgeOutOfRange      = errors.New("edge endpoint out of range")
	ErrNegativeVertexCount = errors.New("vertex count must be non-negative")
)

// RejectedEdge. an edge dropped by AddEdge because one of its endpoints is
// outside [1, nLeft] x [1, nRight]. kept so that callers can inspect which
// input edges never made it into the graph.
type RejectedEdge struct {
	U, V int
}

/*
BipartiteGraph. adjacency structure of a bipartite graph with nLeft left
vertices and nRight right vertices. public vertex ids are 1-based
([1, nLeft] and [1, nRight]), internal storage is 0-based. only left->right
adjacency is stored, matching state lives in the matcher.
*/
type BipartiteGraph struct {
	nLeft, nRight int
	adj           [][]Index // adj[u] = right neighbors of left vertex u (both 0-based)
	numEdges      int
	rejected      []RejectedEdge
}

func NewBipartiteGraph(nLeft, nRight int) (*BipartiteGraph, error) {
	if nLeft < 0 || nRight < 0 {
		return nil, util.WrapErrorf(ErrNegativeVertexCount, util.ErrBadParamInput,
			"vertex counts must be non-negative, got nLeft=%d, nRight=%d", nLeft, nRight)
	}

	return &BipartiteGraph{
		nLeft:  nLeft,
		nRight: nRight,
		adj:    make([][]Index, nLeft),
	}, nil
}

/*
AddEdge. records that left vertex u (1-based) can be matched to right vertex
v (1-based). an out-of-range endpoint drops the edge, records it in the
rejected list, and returns a non-fatal error; subsequent AddEdge calls keep
working, one malformed edge never invalidates the rest of the batch.
*/
func (g *BipartiteGraph) AddEdge(u, v int) error {
	if u < 1 || u > g.nLeft || v < 1 || v > g.nRight {
		g.rejected = append(g.rejected, RejectedEdge{U: u, V: v})
		return util.WrapErrorf(ErrEdgeOutOfRange, util.ErrBadParamInput,
			"invalid edge (%d, %d): left id must be in [1, %d], right id in [1, %d]",
			u, v, g.nLeft, g.nRight)
	}

	g.adj[u-1] = append(g.adj[u-1], Index(v-1))
	g.numEdges++
	return nil
}

func (g *BipartiteGraph) LeftCount() int {
	return g.nLeft
}

func (g *BipartiteGraph) RightCount() int {
	return g.nRight
}

func (g *BipartiteGraph) NumberOfEdges() int {
	return g.numEdges
}

// ForNeighborsOf. iterates over the right neighbors of left vertex u
// (0-based) in insertion order.
func (g *BipartiteGraph) ForNeighborsOf(u Index, fn func(v Index)) {
	for _, v := range g.adj[u] {
		fn(v)
	}
}

// NeighborsOf. right neighbors of left vertex u (0-based), insertion order.
func (g *BipartiteGraph) NeighborsOf(u Index) []Index {
	return g.adj[u]
}

// RejectedEdges. edges dropped by AddEdge so far, in arrival order.
func (g *BipartiteGraph) RejectedEdges() []RejectedEdge {
	return g.rejected
}

// HasEdge. reports whether edge (u, v), 1-based, was added to the graph.
func (g *BipartiteGraph) HasEdge(u, v int) bool {
	if u < 1 || u > g.nLeft || v < 1 || v > g.nRight {
		return false
	}
	for _, w := range g.adj[u-1] {
		if w == Index(v-1) {
			return true
		}
	}
	return false
}
