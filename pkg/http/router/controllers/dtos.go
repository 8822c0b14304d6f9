package controllers

import (
	"github.com/lintang-b-s/bimatch/pkg/datastructure"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
)

type solveRequest struct {
	LeftCount  int      `json:"left_count" validate:"min=0"`
	RightCount int      `json:"right_count" validate:"min=0"`
	Edges      [][2]int `json:"edges"`
}

func (req *solveRequest) toInstance() matcher.Instance {
	return matcher.NewInstance(req.LeftCount, req.RightCount, req.Edges)
}

type batchSolveRequest struct {
	Instances []solveRequest `json:"instances" validate:"required,dive"`
}

type rejectedEdgeResponse struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type solveResponse struct {
	MatchingSize  int                    `json:"matching_size"`
	Pairs         []matcher.MatchedPair  `json:"pairs"`
	RejectedEdges []rejectedEdgeResponse `json:"rejected_edges,omitempty"`
}

func NewSolveResponse(m *matcher.Matching, rejected []datastructure.RejectedEdge) solveResponse {
	rejectedResp := make([]rejectedEdgeResponse, 0, len(rejected))
	for _, re := range rejected {
		rejectedResp = append(rejectedResp, rejectedEdgeResponse{Left: re.U, Right: re.V})
	}

	return solveResponse{
		MatchingSize:  m.GetSize(),
		Pairs:         m.GetPairs(),
		RejectedEdges: rejectedResp,
	}
}

type batchItemResponse struct {
	Result *solveResponse `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type batchSolveResponse struct {
	Results []batchItemResponse `json:"results"`
}

func NewBatchSolveResponse(results []matcher.InstanceResult) batchSolveResponse {
	items := make([]batchItemResponse, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			items = append(items, batchItemResponse{Error: res.Err.Error()})
			continue
		}
		solveResp := NewSolveResponse(res.Matching, res.Rejected)
		items = append(items, batchItemResponse{Result: &solveResp})
	}
	return batchSolveResponse{Results: items}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
