package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/bimatch/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/bimatch/pkg/matcher"
	"go.uber.org/zap"
)

type matchingAPI struct {
	matcherService MatcherService
	log            *zap.Logger
}

func New(matcherService MatcherService, log *zap.Logger) *matchingAPI {
	return &matchingAPI{
		matcherService: matcherService,
		log:            log,
	}
}

func (api *matchingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/matching/solve", api.solve)
	group.POST("/matching/solveBatch", api.solveBatch)
}

func (api *matchingAPI) solve(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request solveRequest
		err     error
	)

	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	matching, rejected, err := api.matcherService.Solve(request.LeftCount, request.RightCount, request.Edges)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSolveResponse(matching, rejected)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *matchingAPI) solveBatch(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request batchSolveRequest
		err     error
	)

	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	instances := make([]matcher.Instance, 0, len(request.Instances))
	for _, instReq := range request.Instances {
		instances = append(instances, instReq.toInstance())
	}

	results := api.matcherService.SolveBatch(instances)

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBatchSolveResponse(results)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
