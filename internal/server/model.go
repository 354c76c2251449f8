package server

import (
	"github.com/rgehrsitz/nettogo/internal/output"
	"github.com/rgehrsitz/nettogo/internal/scenario"
	"github.com/shopspring/decimal"
)

// EvaluateRequest is the body of POST /v1/evaluate
type EvaluateRequest struct {
	Scenarios []scenario.Draft `json:"scenarios"`
}

// EvaluateResponse carries one row per requested scenario, in request order
type EvaluateResponse struct {
	Results []output.Row `json:"results"`
}

// BreakEvenRequest is the body of POST /v1/break-even. The scenario's gross
// salary is the starting point the result is compared against.
type BreakEvenRequest struct {
	Scenario  scenario.Draft   `json:"scenario"`
	TargetNet *decimal.Decimal `json:"target_net"`
	MinGross  *decimal.Decimal `json:"min_gross,omitempty"`
	MaxGross  *decimal.Decimal `json:"max_gross,omitempty"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Years  []int  `json:"years"`
}

// ErrorResponse describes a rejected request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
