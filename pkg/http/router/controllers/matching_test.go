package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/bimatch/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/bimatch/pkg/http/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	api := New(usecases.NewMatcherService(zap.NewNop(), 2), zap.NewNop())
	router := httprouter.New()
	group := helper.NewRouteGroup(router, "/api")
	api.Routes(group)
	return router
}

func TestSolveEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"left_count": 3, "right_count": 3, "edges": [[1,1],[1,2],[2,1],[3,3]]}`
	req := httptest.NewRequest(http.MethodPost, "/api/matching/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data solveResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Data.MatchingSize)
	assert.Len(t, resp.Data.Pairs, 3)
	assert.Empty(t, resp.Data.RejectedEdges)
}

func TestSolveEndpointReportsRejectedEdges(t *testing.T) {
	router := newTestRouter(t)

	body := `{"left_count": 2, "right_count": 2, "edges": [[1,1],[0,2],[2,9]]}`
	req := httptest.NewRequest(http.MethodPost, "/api/matching/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data solveResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Data.MatchingSize)
	assert.Len(t, resp.Data.RejectedEdges, 2)
}

func TestSolveEndpointBadRequest(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"left_count": `},
		{name: "negative left count", body: `{"left_count": -1, "right_count": 3, "edges": []}`},
		{name: "negative right count", body: `{"left_count": 3, "right_count": -4, "edges": []}`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/api/matching/solve", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSolveBatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"instances": [
		{"left_count": 1, "right_count": 1, "edges": [[1,1]]},
		{"left_count": 2, "right_count": 2, "edges": [[1,1],[1,2],[2,1]]}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/matching/solveBatch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data batchSolveResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data.Results, 2)
	require.NotNil(t, resp.Data.Results[0].Result)
	assert.Equal(t, 1, resp.Data.Results[0].Result.MatchingSize)
	require.NotNil(t, resp.Data.Results[1].Result)
	assert.Equal(t, 2, resp.Data.Results[1].Result.MatchingSize)
}

func TestSolveBatchEndpointMissingInstances(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/matching/solveBatch", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
