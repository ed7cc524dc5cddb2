package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/me/jobseq/internal/sequencing"
	"github.com/me/jobseq/pkg/model"
)

// scheduleRequest is the body of POST /api/v1/schedules.
type scheduleRequest struct {
	Name string      `json:"name"`
	Jobs []model.Job `json:"jobs"`
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req scheduleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.metrics.ObserveInvalid()
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}
	if req.Jobs == nil {
		s.metrics.ObserveInvalid()
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("Invalid job set",
			model.FieldError{Field: "jobs", Path: "jobs", Message: "required"},
		))
		return
	}

	start := time.Now()
	sched, err := sequencing.Schedule(req.Jobs)
	elapsed := time.Since(start)

	var invalid *sequencing.InvalidInputError
	if errors.As(err, &invalid) {
		s.metrics.ObserveInvalid()
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("Invalid job set", invalid.Problems...))
		return
	}
	if err != nil {
		s.logger.Error("schedule failed", "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("Failed to sequence jobs"))
		return
	}
	s.metrics.ObserveSolve(len(req.Jobs), sched.TotalProfit, elapsed)

	name := req.Name
	if name == "" {
		name = "unnamed"
	}
	run := &model.Run{
		Name:      name,
		Jobs:      req.Jobs,
		Schedule:  *sched,
		CreatedAt: s.now().UTC(),
	}

	if r.URL.Query().Get("persist") == "false" || s.store == nil {
		s.logger.Debug("schedule solved", "name", name, "jobs", len(req.Jobs), "selected", len(sched.Sequence))
		respondOK(w, reqID, run)
		return
	}

	run.ID = runID()
	if err := s.store.CreateRun(r.Context(), run); err != nil {
		s.logger.Error("store run failed", "run_id", run.ID, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("Failed to store run"))
		return
	}

	s.logger.Info("schedule solved",
		"run_id", run.ID,
		"name", name,
		"jobs", len(req.Jobs),
		"selected", len(sched.Sequence),
		"total_profit", sched.TotalProfit,
	)
	respondCreated(w, reqID, run)
}
