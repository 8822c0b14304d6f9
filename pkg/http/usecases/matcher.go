package usecases

import (
	"github.com/lintang-b-s/bimatch/pkg/concurrent"
	"github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
	"github.com/lintang-b-s/bimatch/pkg/util"
	"go.uber.org/zap"
)

type MatcherService struct {
	log             *zap.Logger
	batchNumWorkers int
}

func NewMatcherService(log *zap.Logger, batchNumWorkers int) *MatcherService {
	if batchNumWorkers < 1 {
		batchNumWorkers = 1
	}
	return &MatcherService{
		log:             log,
		batchNumWorkers: batchNumWorkers,
	}
}

/*
Solve. builds a fresh bipartite graph from the instance, runs Hopcroft-Karp
on it, and returns the maximum matching plus the edges that were dropped for
being out of range. a new graph + matcher per call, so concurrent requests
never share matcher state.
*/
func (ms *MatcherService) Solve(leftCount, rightCount int, edges [][2]int) (*matcher.Matching,
	[]datastructure.RejectedEdge, error) {

	graph, err := datastructure.NewBipartiteGraph(leftCount, rightCount)
	if err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"cannot build bipartite graph with leftCount=%d, rightCount=%d", leftCount, rightCount)
	}

	for _, e := range edges {
		if addErr := graph.AddEdge(e[0], e[1]); addErr != nil {
			ms.log.Warn("dropping out-of-range edge",
				zap.Int("left", e[0]), zap.Int("right", e[1]))
		}
	}

	hk := matcher.NewHopcroftKarp(graph)
	size := hk.ComputeMaximumMatching()

	ms.log.Debug("solved matching instance",
		zap.Int("left_count", leftCount), zap.Int("right_count", rightCount),
		zap.Int("edges", graph.NumberOfEdges()), zap.Int("matching_size", size))

	return matcher.NewMatching(size, hk.MatchedPairs()), graph.RejectedEdges(), nil
}

type indexedInstance struct {
	idx      int
	instance matcher.Instance
}

type indexedResult struct {
	idx    int
	result matcher.InstanceResult
}

/*
SolveBatch. solves independent matching instances concurrently over a worker
pool and returns results in input order. a failing instance (negative vertex
counts) only fails its own slot.
*/
func (ms *MatcherService) SolveBatch(instances []matcher.Instance) []matcher.InstanceResult {
	numWorkers := util.MinInt(ms.batchNumWorkers, len(instances))
	if numWorkers < 1 {
		numWorkers = 1
	}
	pool := concurrent.NewWorkerPool[indexedInstance, indexedResult](numWorkers, len(instances))

	pool.Start(func(job indexedInstance) indexedResult {
		m, rejected, err := ms.Solve(job.instance.LeftCount, job.instance.RightCount, job.instance.Edges)
		return indexedResult{
			idx: job.idx,
			result: matcher.InstanceResult{
				Matching: m,
				Rejected: rejected,
				Err:      err,
			},
		}
	})

	for i, instance := range instances {
		pool.AddJob(indexedInstance{idx: i, instance: instance})
	}
	pool.Close()
	pool.Wait()

	results := make([]matcher.InstanceResult, len(instances))
	for res := range pool.CollectResults() {
		results[res.idx] = res.result
	}

	return results
}
