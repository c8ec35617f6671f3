// Package httpapi exposes the recommendation engine over HTTP: ranking,
// payment estimates, lead capture, and a health probe.
package httpapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexanderramin/driveline/internal/catalog"
	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/alexanderramin/driveline/internal/engine"
	"github.com/alexanderramin/driveline/internal/finance"
	"github.com/alexanderramin/driveline/internal/recommend"
)

const recommendationCacheTTL = 5 * time.Minute

// Server wires the repos, orchestrator, and cache behind an http.Handler.
type Server struct {
	vehicles catalog.VehicleRepo
	leads    catalog.LeadRepo
	orch     *recommend.Orchestrator
	cache    Cache
	logw     io.Writer
}

func NewServer(vehicles catalog.VehicleRepo, leads catalog.LeadRepo, orch *recommend.Orchestrator, cache Cache, logw io.Writer) *Server {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if logw == nil {
		logw = io.Discard
	}
	return &Server{vehicles: vehicles, leads: leads, orch: orch, cache: cache, logw: logw}
}

// Handler returns the route table. Rate limiting is layered on by the
// caller so tests can exercise handlers without a limiter.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /leads", s.handleCreateLead)
	mux.HandleFunc("POST /estimates/{kind}", s.handleEstimate)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

// recommendationRequest is the POST /recommendations body. VehicleIDs
// narrows the candidate pool; empty means the whole catalog.
type recommendationRequest struct {
	Needs         domain.NeedsProfile         `json:"needs"`
	VehicleIDs    []string                    `json:"vehicleIds,omitempty"`
	Strategy      recommend.Strategy          `json:"strategy,omitempty"`
	SafetyFilters *engine.SafetyFilterOptions `json:"safetyFilters,omitempty"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Strategy == "" {
		req.Strategy = recommend.StrategyPrimaryAI
	}
	if !recommend.ValidStrategies[req.Strategy] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid strategy %q", req.Strategy))
		return
	}
	if err := req.Needs.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key, cacheable := requestCacheKey(req)
	if cacheable {
		if cached, ok := s.cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			io.WriteString(w, cached)
			return
		}
	}

	vehicles, err := s.loadCandidates(r.Context(), req.VehicleIDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading catalog failed")
		return
	}
	if req.SafetyFilters != nil {
		vehicles = engine.ApplySafetyFilters(vehicles, *req.SafetyFilters)
	}

	result := s.orch.Recommend(r.Context(), vehicles, req.Needs, req.Strategy)

	body, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding response failed")
		return
	}
	if cacheable {
		if err := s.cache.Set(r.Context(), key, string(body), recommendationCacheTTL); err != nil {
			fmt.Fprintf(s.logw, "cache set failed: %v\n", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *Server) loadCandidates(ctx context.Context, ids []string) ([]domain.CandidateVehicle, error) {
	if len(ids) > 0 {
		return s.vehicles.ListByIDs(ctx, ids)
	}
	return s.vehicles.List(ctx)
}

// requestCacheKey hashes the canonical request JSON. Only deterministic
// requests are cached; AI output varies per call.
func requestCacheKey(req recommendationRequest) (string, bool) {
	if req.Strategy != recommend.StrategyDeterministic {
		return "", false
	}
	raw, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(raw)
	return "rec:" + hex.EncodeToString(sum[:]), true
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.DealerLead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := lead.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.vehicles.GetByID(r.Context(), lead.VehicleID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("vehicle %s not found", lead.VehicleID))
			return
		}
		writeError(w, http.StatusInternalServerError, "looking up vehicle failed")
		return
	}

	if err := s.leads.Create(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, "storing lead failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"status": "created"})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")

	var result any
	var err error
	switch kind {
	case "loan":
		var in finance.LoanInputs
		if err = json.NewDecoder(r.Body).Decode(&in); err == nil {
			result, err = finance.EstimateLoan(in)
		}
	case "lease":
		var in finance.LeaseInputs
		if err = json.NewDecoder(r.Body).Decode(&in); err == nil {
			result, err = finance.EstimateLease(in)
		}
	case "cash":
		var in finance.CashInputs
		if err = json.NewDecoder(r.Body).Decode(&in); err == nil {
			result = finance.EstimateCash(in)
		}
	case "fuel":
		var in finance.FuelInputs
		if err = json.NewDecoder(r.Body).Decode(&in); err == nil {
			result, err = finance.EstimateFuelCost(in)
		}
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown estimate kind %q", kind))
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
