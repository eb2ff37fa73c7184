package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/assignx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type analysisAPI struct {
	analysisService AnalysisService
	log             *zap.Logger
}

func New(analysisService AnalysisService, log *zap.Logger) *analysisAPI {
	return &analysisAPI{
		analysisService: analysisService,
		log:             log,
	}
}

func (api *analysisAPI) Routes(group *helper.RouteGroup) {
	group.POST("/solve", api.solve)
	group.POST("/analyze", api.analyze)
	group.POST("/compare", api.compare)
	group.GET("/randomMatrix", api.randomMatrix)
}

func (api *analysisAPI) solve(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
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

	assignment, err := api.analysisService.Solve(request.Matrix)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewAssignmentResponse(assignment)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *analysisAPI) analyze(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request analyzeRequest
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

	result, err := api.analysisService.Analyze(request.Matrix, request.Method,
		request.Epsilon, request.Delta)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewAnalyzeResponse(result)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *analysisAPI) compare(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request compareRequest
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

	result, err := api.analysisService.CompareAllMethods(request.Matrix,
		request.Epsilon, request.Delta)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCompareResponse(result)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *analysisAPI) randomMatrix(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	dim, err := strconv.Atoi(query.Get("dim"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("dim is required and must be a valid int"))
		return
	}

	m, err := api.analysisService.RandomMatrix(dim)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRandomMatrixResponse(m)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
