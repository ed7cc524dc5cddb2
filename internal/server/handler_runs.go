package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/me/jobseq/pkg/model"
)

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts, fieldErrs := parseListOptions(r)
	if len(fieldErrs) > 0 {
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError("Invalid query", fieldErrs...))
		return
	}

	runs, total, err := s.store.ListRuns(r.Context(), opts)
	if err != nil {
		s.logger.Error("list runs failed", "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("Failed to list runs"))
		return
	}

	summaries := make([]model.RunSummary, len(runs))
	for i, run := range runs {
		summaries[i] = run.Summary()
	}
	respondList(w, reqID, summaries, model.NewPagination(opts, len(runs), total))
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run failed", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("Failed to load run"))
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}
	respondOK(w, reqID, run)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	deleted, err := s.store.DeleteRun(r.Context(), id)
	if err != nil {
		s.logger.Error("delete run failed", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("Failed to delete run"))
		return
	}
	if !deleted {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}
	s.logger.Info("run deleted", "run_id", id)
	respondOK(w, reqID, map[string]any{"id": id, "deleted": true})
}

// parseListOptions reads limit, offset and name from the query string.
func parseListOptions(r *http.Request) (model.ListOptions, []model.FieldError) {
	opts := model.DefaultListOptions()
	q := r.URL.Query()
	var errs []model.FieldError

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"limit", &opts.Limit},
		{"offset", &opts.Offset},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, model.FieldError{Field: p.name, Message: "must be an integer"})
			continue
		}
		*p.dst = n
	}
	opts.Name = q.Get("name")
	opts.Clamp()
	return opts, errs
}
