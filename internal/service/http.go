package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
)

// Procedures served by InflationService. Each is a Connect unary call: a POST
// with a JSON body, so the browser UI calls them with a plain fetch.
const (
	CPIProcedure      = "/api/cpi"
	AdjustProcedure   = "/api/adjust"
	ErodedProcedure   = "/api/eroded"
	SalariesProcedure = "/api/salaries"
)

// maxBodyBytes bounds request bodies; a salary table is a few hundred bytes.
const maxBodyBytes = 1 << 20

// Register mounts the API on mux. opts are applied to every Connect handler
// after the service's own codec and size limit.
func (s *InflationService) Register(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithReadMaxBytes(maxBodyBytes),
	}, opts...)

	s.handle(mux, "POST "+CPIProcedure, connect.NewUnaryHandler(CPIProcedure, s.CPI, opts...))
	s.handle(mux, "POST "+AdjustProcedure, connect.NewUnaryHandler(AdjustProcedure, s.Adjust, opts...))
	s.handle(mux, "POST "+ErodedProcedure, connect.NewUnaryHandler(ErodedProcedure, s.Eroded, opts...))
	s.handle(mux, "POST "+SalariesProcedure, connect.NewUnaryHandler(SalariesProcedure, s.Salaries, opts...))

	// The dataset is static, so it is also a cacheable GET
	s.handle(mux, "GET "+CPIProcedure, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, &CPIResponse{Records: s.table.Records()})
	}))
	s.handle(mux, "GET /healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
}

func (s *InflationService) handle(mux *http.ServeMux, pattern string, handler http.Handler) {
	if s.metrics != nil {
		handler = s.metrics.Instrument(pattern, handler)
	}
	mux.Handle(pattern, handler)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
