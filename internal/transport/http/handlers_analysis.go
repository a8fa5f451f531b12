package httptransport

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracegrid/internal/compliance"
	"tracegrid/internal/coverage"
	"tracegrid/internal/health"
	"tracegrid/internal/quality"
	"tracegrid/internal/riskmatrix"
	dErrors "tracegrid/pkg/domain-errors"
	"tracegrid/pkg/platform/httputil"
	"tracegrid/pkg/platform/sentinel"
)

func (h *Handler) handleCoverage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.projects.Snapshot(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "load project snapshot"))
		return
	}
	body := struct {
		coverage.Summary
		Documents coverage.DocStats `json:"documents"`
	}{
		Summary:   coverage.Summarize(snap),
		Documents: coverage.DocCompleteness(snap.Documents, h.thresholds.FilledSectionMinChars),
	}
	httputil.WriteJSON(w, http.StatusOK, body)
}

func (h *Handler) handleRiskMatrix(w http.ResponseWriter, r *http.Request) {
	snap, err := h.projects.Snapshot(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "load project snapshot"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, riskmatrix.Build(snap.Risks))
}

func (h *Handler) handleCompliance(w http.ResponseWriter, r *http.Request) {
	snap, err := h.projects.Snapshot(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "load project snapshot"))
		return
	}
	standardID := chi.URLParam(r, "standardID")
	assessed, err := compliance.Assess(snap, standardID, h.thresholds)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			h.fail(w, r, dErrors.New(dErrors.CodeNotFound, "unknown compliance standard"))
			return
		}
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "assess compliance"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, assessed)
}

type standardSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Version       string  `json:"version"`
	PassThreshold float64 `json:"passThreshold"`
	Domains       int     `json:"domains"`
	Controls      int     `json:"controls"`
}

func (h *Handler) handleListStandards(w http.ResponseWriter, _ *http.Request) {
	var out []standardSummary
	for _, std := range compliance.List() {
		s := standardSummary{
			ID:            std.ID,
			Name:          std.Name,
			Version:       std.Version,
			PassThreshold: std.PassThreshold,
			Domains:       len(std.Domains),
		}
		for _, dom := range std.Domains {
			s.Controls += len(dom.Controls)
		}
		out = append(out, s)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleQuality(w http.ResponseWriter, r *http.Request) {
	snap, err := h.projects.Snapshot(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "load project snapshot"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, quality.Evaluate(snap, h.thresholds, h.now()))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap, err := h.projects.Snapshot(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "load project snapshot"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, health.Score(snap, h.thresholds))
}

// handleAssessment serves the full cached report. The standard query parameter
// scopes the compliance section; without it the report is unscoped.
func (h *Handler) handleAssessment(w http.ResponseWriter, r *http.Request) {
	standardID := r.URL.Query().Get("standard")
	report, err := h.assessments.Run(r.Context(), projectID(r), standardID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			h.fail(w, r, dErrors.New(dErrors.CodeNotFound, "unknown compliance standard"))
			return
		}
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "run assessment"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	if h.trail == nil {
		h.fail(w, r, dErrors.New(dErrors.CodeNotFound, "audit trail not configured"))
		return
	}
	events, err := h.trail.ListByProject(r.Context(), projectID(r))
	if err != nil {
		h.fail(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "list audit events"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}
