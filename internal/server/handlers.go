package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/extension-forge/internal/analysis"
	"github.com/jonathan/extension-forge/internal/pipeline"
	"github.com/jonathan/extension-forge/internal/types"
)

// handleGenerate runs the full pipeline for a prompt. The bundle is returned
// in the response body; it is written to disk only when the request asks for
// it.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	targetDir := req.TargetDir
	if targetDir == "" {
		targetDir = s.outputDir
	}
	if req.Write && targetDir == "" {
		s.errorResponse(w, http.StatusBadRequest, "target_dir is required when write is requested")
		return
	}

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Prompt:    req.Prompt,
		TargetDir: targetDir,
		RulesPath: s.rulesPath,
		DryRun:    !req.Write,
		Verbose:   s.verbose,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), fmt.Sprintf("generation failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		Features: result.Features,
		Bundle:   result.Bundle,
		Report:   result.Report,
	})
}

// handleAnalyze runs prompt analysis only and returns the feature set.
// An empty prompt is accepted and yields the default fallback feature set.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	var rules *analysis.RuleConfig
	if s.rulesPath != "" {
		var err error
		rules, err = analysis.LoadRules(s.rulesPath)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("loading rule tables failed: %v", err))
			return
		}
	}

	features := analysis.Analyze(req.Prompt, rules)
	s.jsonResponse(w, http.StatusOK, features)
}
