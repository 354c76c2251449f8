// Package server exposes the calculation engine over HTTP.
package server

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/nettogo/internal/breakeven"
	"github.com/rgehrsitz/nettogo/internal/calculation"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/rgehrsitz/nettogo/internal/output"
	"github.com/valyala/fasthttp"
)

const (
	constantsPrefix = "/v1/constants/"

	// MaxScenarios bounds the number of scenarios in one request
	MaxScenarios = 100
)

// Server answers evaluation requests. The engine is safe for concurrent use,
// so a single Server serves all connections.
type Server struct {
	engine *calculation.Engine
	logger calculation.Logger

	// baseCtx bounds long-running handlers. A RequestCtx is only a usable
	// context.Context inside a fasthttp.Server, so handlers never pass it on.
	baseCtx context.Context
}

// New creates a server over engine. A nil logger discards output.
func New(engine *calculation.Engine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{engine: engine, logger: logger, baseCtx: context.Background()}
}

// Handler routes requests to the endpoint handlers
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch {
	case path == "/healthz":
		s.handleHealth(ctx)
	case path == "/v1/evaluate":
		s.handleEvaluate(ctx)
	case path == "/v1/break-even":
		s.handleBreakEven(ctx)
	case strings.HasPrefix(path, constantsPrefix):
		s.handleConstants(ctx, strings.TrimPrefix(path, constantsPrefix))
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	s.logger.Debugf("%s %s %d (%s)", ctx.Method(), path, ctx.Response.StatusCode(), time.Since(start))
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.baseCtx = ctx

	srv := &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "netto",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		MaxRequestBodySize: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Infof("shutting down")
		if err := srv.Shutdown(); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok", Years: s.engine.Constants.Years()})
}

func (s *Server) handleEvaluate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req EvaluateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "at least one scenario is required")
		return
	}
	if len(req.Scenarios) > MaxScenarios {
		writeError(ctx, fasthttp.StatusBadRequest,
			"too many scenarios: "+strconv.Itoa(len(req.Scenarios))+" (max "+strconv.Itoa(MaxScenarios)+")")
		return
	}

	// ids follow request order; each request is its own collection
	scenarios := make([]domain.Scenario, len(req.Scenarios))
	for i, d := range req.Scenarios {
		scenarios[i] = d.Scenario(i + 1)
	}

	results := s.engine.EvaluateAll(scenarios)
	for _, r := range results {
		if r.Err != nil && !domain.IsUnavailable(r.Err) {
			s.logger.Warnf("%v", r.Err)
		}
	}

	writeJSON(ctx, fasthttp.StatusOK, EvaluateResponse{Results: output.Rows(results)})
}

func (s *Server) handleBreakEven(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req BreakEvenRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	base := req.Scenario.Scenario(1)
	if err := base.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	constraints := breakeven.Constraints{MinGross: req.MinGross, MaxGross: req.MaxGross, TargetNet: req.TargetNet}
	if err := constraints.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	solver := breakeven.NewDefaultSolver(s.engine)
	result, err := solver.Solve(s.baseCtx, breakeven.OptimizationRequest{Base: base, Constraints: constraints})
	if err != nil {
		// unknown years are missing resources; everything else is unsolvable
		var uye *domain.UnsupportedYearError
		if errors.As(err, &uye) {
			writeError(ctx, fasthttp.StatusNotFound, err.Error())
			return
		}
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleConstants(ctx *fasthttp.RequestCtx, yearParam string) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid year: "+yearParam)
		return
	}

	c, err := s.engine.Constants.Lookup(year)
	if err != nil {
		var uye *domain.UnsupportedYearError
		if errors.As(err, &uye) {
			writeError(ctx, fasthttp.StatusNotFound, err.Error())
			return
		}
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, c)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"encoding failed"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
