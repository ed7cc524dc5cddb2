package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "jobseq API",
		Version:     "v1",
		Description: "Job sequencing with deadlines: select and order jobs for maximum profit",
		Endpoints: []endpointInfo{
			{"/api/v1/schedules", []string{"POST"}, "Sequence a job set. ?persist=false skips storing the run"},
			{"/api/v1/runs", []string{"GET"}, "List stored runs (limit, offset, name)"},
			{"/api/v1/runs/{id}", []string{"GET", "DELETE"}, "Single run with jobs and schedule"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
			{"/metrics", []string{"GET"}, "Prometheus metrics"},
		},
	})
}
