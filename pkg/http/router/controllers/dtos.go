package controllers

import (
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine"
)

type solveRequest struct {
	Matrix [][]float64 `json:"matrix" validate:"required,min=1"`
}

type analyzeRequest struct {
	Matrix  [][]float64 `json:"matrix" validate:"required,min=1"`
	Method  string      `json:"method" validate:"required"`
	Epsilon float64     `json:"epsilon" validate:"omitempty,gt=0"`
	Delta   float64     `json:"delta" validate:"omitempty,gt=0"`
}

type compareRequest struct {
	Matrix  [][]float64 `json:"matrix" validate:"required,min=1"`
	Epsilon float64     `json:"epsilon" validate:"omitempty,gt=0"`
	Delta   float64     `json:"delta" validate:"omitempty,gt=0"`
}

type assignmentResponse struct {
	RowInd    []int   `json:"row_ind"`
	ColInd    []int   `json:"col_ind"`
	TotalCost float64 `json:"total_cost"`
}

func NewAssignmentResponse(assignment *datastructure.Assignment) assignmentResponse {
	return assignmentResponse{
		RowInd:    assignment.RowIndices(),
		ColInd:    assignment.ColIndices(),
		TotalCost: assignment.TotalCost(),
	}
}

type dualsResponse struct {
	U []float64 `json:"u"`
	V []float64 `json:"v"`
}

type analyzeResponse struct {
	AnalysisID  string             `json:"analysis_id"`
	Method      string             `json:"method"`
	DisplayName string             `json:"display_name"`
	Assignment  assignmentResponse `json:"assignment"`
	Sensitivity [][]float64        `json:"sensitivity"`
	Duals       *dualsResponse     `json:"duals,omitempty"`
}

func NewAnalyzeResponse(result *engine.AnalysisResult) analyzeResponse {
	resp := analyzeResponse{
		AnalysisID:  result.GetID(),
		Method:      result.GetMethod().String(),
		DisplayName: result.GetMethod().DisplayName(),
		Assignment:  NewAssignmentResponse(result.GetAssignment()),
		Sensitivity: result.GetSensitivity().Rows(),
	}
	if duals := result.GetDuals(); duals != nil {
		resp.Duals = &dualsResponse{U: duals.U(), V: duals.V()}
	}
	return resp
}

type methodResultResponse struct {
	Method      string      `json:"method"`
	DisplayName string      `json:"display_name"`
	Sensitivity [][]float64 `json:"sensitivity"`
	ElapsedMs   float64     `json:"elapsed_ms"`
}

func NewMethodResultResponse(result datastructure.MethodResult) methodResultResponse {
	return methodResultResponse{
		Method:      result.GetMethod(),
		DisplayName: result.GetDisplayName(),
		Sensitivity: result.GetSensitivity().Rows(),
		ElapsedMs:   result.GetElapsedMs(),
	}
}

type compareResponse struct {
	AnalysisID string                 `json:"analysis_id"`
	Assignment assignmentResponse     `json:"assignment"`
	Results    []methodResultResponse `json:"results"`
}

func NewCompareResponse(result *engine.ComparisonResult) compareResponse {
	results := make([]methodResultResponse, 0, len(result.GetResults()))
	for _, r := range result.GetResults() {
		results = append(results, NewMethodResultResponse(r))
	}
	return compareResponse{
		AnalysisID: result.GetID(),
		Assignment: NewAssignmentResponse(result.GetAssignment()),
		Results:    results,
	}
}

type randomMatrixResponse struct {
	Dim    int         `json:"dim"`
	Matrix [][]float64 `json:"matrix"`
}

func NewRandomMatrixResponse(m *datastructure.Matrix) randomMatrixResponse {
	return randomMatrixResponse{
		Dim:    m.Dim(),
		Matrix: m.Rows(),
	}
}

// summaryFrame closes a websocket comparison stream after the per-method
// frames.
type summaryFrame struct {
	Assignment assignmentResponse `json:"assignment"`
	TotalCost  float64            `json:"total_cost"`
	AnalysisID string             `json:"analysis_id"`
}

func NewSummaryFrame(assignment *datastructure.Assignment, analysisID string) summaryFrame {
	return summaryFrame{
		Assignment: NewAssignmentResponse(assignment),
		TotalCost:  assignment.TotalCost(),
		AnalysisID: analysisID,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
