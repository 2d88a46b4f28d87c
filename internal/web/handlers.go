package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JonMunkholm/trafficsrc/internal/core"
	"github.com/JonMunkholm/trafficsrc/internal/logging"
)

// errMalformedBody marks request bodies that are not a JSON range object.
var errMalformedBody = errors.New("malformed request body")

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Store:  s.service.StoreName(),
	})
}

// handleTrafficSourceRange serves POST /api/traffic_source/range.
// An empty body is treated as an open range.
func (s *Server) handleTrafficSourceRange(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRangeRequest(w, r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sources, err := s.service.Range(r.Context(), req)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	logging.WithFields(r.Context(), "start", req.Start, "end", req.End).
		Debug("range served", "rows", len(sources))
	writeJSON(w, http.StatusOK, sources)
}

func decodeRangeRequest(w http.ResponseWriter, r *http.Request) (core.RangeRequest, error) {
	var req core.RangeRequest
	if r.Body == nil {
		return req, nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return core.RangeRequest{}, nil
		}
		return core.RangeRequest{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if dec.More() {
		return core.RangeRequest{}, fmt.Errorf("%w: trailing data after object", errMalformedBody)
	}
	return req, nil
}
