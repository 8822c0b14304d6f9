package matcher

import "github.com/lintang-b-s/bimatch/pkg/datastructure"

// Instance. one standalone matching problem: vertex counts plus the edge
// list, edges as (left, right) 1-based pairs.
type Instance struct {
	LeftCount  int
	RightCount int
	Edges      [][2]int
}

func NewInstance(leftCount, rightCount int, edges [][2]int) Instance {
	return Instance{
		LeftCount:  leftCount,
		RightCount: rightCount,
		Edges:      edges,
	}
}

// InstanceResult. outcome of solving one instance of a batch.
type InstanceResult struct {
	Matching *Matching
	Rejected []datastructure.RejectedEdge
	Err      error
}
