package controllers

import (
	"github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
)

type MatcherService interface {
	Solve(leftCount, rightCount int, edges [][2]int) (*matcher.Matching, []datastructure.RejectedEdge, error)
	SolveBatch(instances []matcher.Instance) []matcher.InstanceResult
}
