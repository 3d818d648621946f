package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/matzehuels/gridwords/pkg/buildinfo"
	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/search"
	"github.com/matzehuels/gridwords/pkg/solver"
)

// GridRequest names a grid either as rows of cells or as text in the format
// accepted by grid.Parse. Rows wins when both are set.
type GridRequest struct {
	Rows [][]string `json:"rows,omitempty"`
	Grid string     `json:"grid,omitempty"`
}

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	GridRequest
	// Words replaces the server dictionary for this request when non-empty.
	Words []string `json:"words,omitempty"`
}

// SolveResponse is returned by POST /v1/solve.
type SolveResponse struct {
	RequestID string       `json:"request_id"`
	Words     []string     `json:"words"`
	Stats     solver.Stats `json:"stats"`
}

// TraceRequest is the body of POST /v1/trace.
type TraceRequest struct {
	GridRequest
	Word string `json:"word"`
}

// TraceResponse is returned by POST /v1/trace. Cells are [row, col] pairs in
// path order.
type TraceResponse struct {
	RequestID string   `json:"request_id"`
	Word      string   `json:"word"`
	Found     bool     `json:"found"`
	Path      []int    `json:"path,omitempty"`
	Cells     [][2]int `json:"cells,omitempty"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
	Code      string `json:"code"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary"`
}

// handleSolve handles POST /v1/solve.
//
// Response:
//
//	200 OK: SolveResponse
//	400 Bad Request: malformed body or grid
//	504 Gateway Timeout: solve exceeded the server timeout
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := RequestID(r.Context())
	logger := s.logger.With("request_id", id, "handler", "solve")

	var req SolveRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := req.build()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	words := s.words
	if len(req.Words) > 0 {
		words = req.Words
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	res, err := s.solver.Solve(ctx, g, words)
	if err != nil {
		logger.Error("Solve failed", "error", err)
		s.writeError(w, r, err)
		return
	}

	logger.Info("Solved", "cells", res.Stats.Cells, "found", res.Stats.Found)
	writeJSON(w, http.StatusOK, SolveResponse{RequestID: id, Words: res.Words, Stats: res.Stats})
}

// handleTrace handles POST /v1/trace.
//
// Response:
//
//	200 OK: TraceResponse (Found reports whether the word fits)
//	400 Bad Request: malformed body, grid or empty word
//	504 Gateway Timeout: trace exceeded the server timeout
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	var req TraceRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Word == "" {
		s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "word cannot be empty"))
		return
	}
	g, err := req.build()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	p, ok, err := search.TraceContext(ctx, g, req.Word)
	if err != nil {
		s.logger.Error("Trace failed", "request_id", RequestID(r.Context()), "error", err)
		s.writeError(w, r, errs.Wrap(errs.ErrCodeTimeout, err, "trace interrupted"))
		return
	}

	resp := TraceResponse{RequestID: RequestID(r.Context()), Word: req.Word}
	if ok {
		resp.Found = true
		resp.Path = p
		for _, c := range p {
			row, col := g.Coord(c)
			resp.Cells = append(resp.Cells, [2]int{row, col})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Dictionary: len(s.words)})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

// build parses the request grid and enforces the size limit for untrusted
// input.
func (g GridRequest) build() (*grid.Grid, error) {
	var (
		out *grid.Grid
		err error
	)
	switch {
	case len(g.Rows) > 0:
		out, err = grid.Build(g.Rows)
	case strings.TrimSpace(g.Grid) != "":
		out, err = grid.Parse(strings.NewReader(g.Grid))
	default:
		return nil, errs.New(errs.ErrCodeInvalidGrid, "request must set rows or grid")
	}
	if err != nil {
		return nil, err
	}
	if err := errs.ValidateDimensions(out.Rows(), out.Cols()); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid request body")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), ErrorResponse{
		RequestID: RequestID(r.Context()),
		Error:     errs.UserMessage(err),
		Code:      string(code),
	})
}

func statusFor(code errs.Code) int {
	switch code {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidGrid, errs.ErrCodeInvalidFormat,
		errs.ErrCodeInvalidPath, errs.ErrCodeUnsupportedCharacter:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errs.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errs.ErrCodeNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
