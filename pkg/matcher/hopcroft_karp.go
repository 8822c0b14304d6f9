package matcher

import (
	"container/list"

	"github.com/lintang-b-s/bimatch/pkg"
	"github.com/lintang-b-s/bimatch/pkg/datastructure"
)

/*
HopcroftKarp. computes a maximum cardinality matching on a bipartite graph
by repeating phases of bfs layering + layered dfs augmentation until no
augmenting path remains.

dist, pairLeft and pairRight are owned by this instance and reused across
phases, so a single instance must not be shared between concurrent callers.
*/
type HopcroftKarp struct {
	graph *datastructure.BipartiteGraph

	pairLeft  []int32 // pairLeft[u] = partner of left vertex u, or pkg.UNMATCHED
	pairRight []int32 // pairRight[v] = partner of right vertex v, or pkg.UNMATCHED
	dist      []int32
	nilDist   int32 // bfs layer at which a free right vertex was first reached
	size      int
}

func NewHopcroftKarp(graph *datastructure.BipartiteGraph) *HopcroftKarp {
	hk := &HopcroftKarp{
		graph:     graph,
		pairLeft:  make([]int32, graph.LeftCount()),
		pairRight: make([]int32, graph.RightCount()),
		dist:      make([]int32, graph.LeftCount()),
	}

	for u := range hk.pairLeft {
		hk.pairLeft[u] = pkg.UNMATCHED
	}
	for v := range hk.pairRight {
		hk.pairRight[v] = pkg.UNMATCHED
	}

	return hk
}

/*
bfsLayer. builds the layer labels for one phase: every free left vertex is a
root at distance 0, and following (non-matching edge, matching edge) hops
each matched left vertex gets the length of the shortest alternating path
reaching it. nilDist records the length at which a free right vertex was
first reached, i.e. the shortest augmenting path length of this phase; the
dist[u] < nilDist guard stops the scan from growing layers past it.

returns false when no augmenting path remains anywhere, which ends the
whole algorithm.
*/
func (hk *HopcroftKarp) bfsLayer() bool {
	layerQueue := list.New()

	for u := 0; u < hk.graph.LeftCount(); u++ {
		if hk.pairLeft[u] == pkg.UNMATCHED {
			hk.dist[u] = 0
			layerQueue.PushBack(int32(u))
		} else {
			hk.dist[u] = pkg.INF_DIST
		}
	}
	hk.nilDist = pkg.INF_DIST

	for layerQueue.Len() > 0 {
		u := layerQueue.Front().Value.(int32)
		layerQueue.Remove(layerQueue.Front())

		if hk.dist[u] >= hk.nilDist {
			continue
		}

		hk.graph.ForNeighborsOf(datastructure.Index(u), func(v datastructure.Index) {
			w := hk.pairRight[v]
			if w == pkg.UNMATCHED {
				if hk.nilDist == pkg.INF_DIST {
					hk.nilDist = hk.dist[u] + 1
				}
				return
			}

			if hk.dist[w] == pkg.INF_DIST {
				hk.dist[w] = hk.dist[u] + 1
				layerQueue.PushBack(w)
			}
		})
	}

	return hk.nilDist != pkg.INF_DIST
}

/*
dfsAugment. walks an alternating path from free left vertex u, only moving
to left vertices exactly one layer deeper and only accepting a free right
vertex at layer nilDist, so every augmenting path flipped in this phase is
a shortest one. flips the path pairings on the way back up the recursion.
marks u exhausted (dist = INF) on failure so later dfs roots of the same
phase never re-explore it.
*/
func (hk *HopcroftKarp) dfsAugment(u int32) bool {
	for _, v := range hk.graph.NeighborsOf(datastructure.Index(u)) {
		w := hk.pairRight[v]

		if w == pkg.UNMATCHED {
			if hk.dist[u]+1 == hk.nilDist {
				hk.pairLeft[u] = int32(v)
				hk.pairRight[v] = u
				return true
			}
			continue
		}

		if hk.dist[w] == hk.dist[u]+1 && hk.dfsAugment(w) {
			hk.pairLeft[u] = int32(v)
			hk.pairRight[v] = u
			return true
		}
	}

	hk.dist[u] = pkg.INF_DIST
	return false
}

/*
ComputeMaximumMatching. runs bfs + dfs phases until the layering reports no
augmenting path. O(E*sqrt(V)): each phase costs O(V+E) and the number of
phases is O(sqrt(V)) because every phase augments along strictly longer
shortest paths.

returns the matching size; MatchedPairs holds the witness pairing.
*/
func (hk *HopcroftKarp) ComputeMaximumMatching() int {
	for hk.bfsLayer() {
		for u := 0; u < hk.graph.LeftCount(); u++ {
			if hk.pairLeft[u] == pkg.UNMATCHED && hk.dfsAugment(int32(u)) {
				hk.size++
			}
		}
	}

	return hk.size
}

/*
MatchedPairs. the current pairing as (left, right) 1-based pairs in
increasing left id order. read-only; before ComputeMaximumMatching it
returns an empty slice.
*/
func (hk *HopcroftKarp) MatchedPairs() []MatchedPair {
	pairs := make([]MatchedPair, 0, hk.size)
	for u := 0; u < hk.graph.LeftCount(); u++ {
		if hk.pairLeft[u] != pkg.UNMATCHED {
			pairs = append(pairs, MatchedPair{Left: u + 1, Right: int(hk.pairLeft[u]) + 1})
		}
	}
	return pairs
}

// MatchingSize. size of the pairing found so far.
func (hk *HopcroftKarp) MatchingSize() int {
	return hk.size
}
