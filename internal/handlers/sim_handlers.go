package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jaskrrish/Go-QSim/internal/models/qsim"
	qsimcore "github.com/jaskrrish/Go-QSim/internal/qsim"
	"github.com/jaskrrish/Go-QSim/internal/qsim/digest"
	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
)

// SimHandler exposes simulator sessions over HTTP. It translates JSON into
// simulator calls and simulator errors into status codes; it does no physics.
type SimHandler struct {
	sessions          *qsimcore.SessionManager
	fingerprinter     *digest.Fingerprinter
	defaultTTLMinutes int
}

// NewSimHandler creates a new simulator handler
func NewSimHandler(sessions *qsimcore.SessionManager, defaultTTLMinutes int) *SimHandler {
	return &SimHandler{
		sessions:          sessions,
		fingerprinter:     digest.NewFingerprinter(digest.SHA3_256Method),
		defaultTTLMinutes: defaultTTLMinutes,
	}
}

// CreateSessionHandler handles POST /api/v1/sim/session
func (h *SimHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req qsim.SessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.TTLMinutes == 0 {
		req.TTLMinutes = h.defaultTTLMinutes
	}

	session, err := h.sessions.CreateSession(&req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, qsim.SessionResponse{
		Session: session,
		Metrics: &qsim.MetricsResponse{Trace: 1, Purity: 1},
	})
}

// SessionHandler routes /api/v1/sim/session/{id}[/action]
func (h *SimHandler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	if len(pathParts) < 6 {
		respondWithError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	sessionID, err := uuid.Parse(pathParts[5])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	action := ""
	if len(pathParts) > 6 {
		action = pathParts[6]
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.getSession(w, sessionID)
	case action == "" && r.Method == http.MethodDelete:
		h.deleteSession(w, sessionID)
	case action == "reset" && r.Method == http.MethodPost:
		h.reset(w, sessionID)
	case action == "gate" && r.Method == http.MethodPost:
		h.applyGate(w, r, sessionID)
	case action == "noise" && r.Method == http.MethodPost:
		h.applyNoise(w, r, sessionID)
	case action == "measure" && r.Method == http.MethodPost:
		h.measure(w, r, sessionID)
	case action == "circuit" && r.Method == http.MethodPost:
		h.runCircuit(w, r, sessionID)
	case action == "probabilities" && r.Method == http.MethodGet:
		h.probabilities(w, sessionID)
	case action == "metrics" && r.Method == http.MethodGet:
		h.metrics(w, sessionID)
	case action == "density" && r.Method == http.MethodGet:
		h.density(w, sessionID)
	case action == "" || isKnownAction(action):
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("Unknown action %q", action))
	}
}

// HealthCheckHandler handles GET /api/v1/sim/health
func (h *SimHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":     "healthy",
		"service":    "Density Matrix Simulator",
		"version":    "1.0.0",
		"sessions":   h.sessions.Count(),
		"max_qubits": h.sessions.MaxQubits(),
	}

	respondWithJSON(w, http.StatusOK, health)
}

func (h *SimHandler) getSession(w http.ResponseWriter, id uuid.UUID) {
	var metrics qsim.MetricsResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		metrics.Trace, metrics.Purity = sim.GetMetrics()
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	session, err := h.sessions.GetSession(id)
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, qsim.SessionResponse{
		Session: session,
		Metrics: &metrics,
	})
}

func (h *SimHandler) deleteSession(w http.ResponseWriter, id uuid.UUID) {
	if err := h.sessions.DeleteSession(id); err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Session deleted successfully",
	})
}

func (h *SimHandler) reset(w http.ResponseWriter, id uuid.UUID) {
	var metrics qsim.MetricsResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		sim.Reset()
		metrics.Trace, metrics.Purity = sim.GetMetrics()
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, metrics)
}

func (h *SimHandler) applyGate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req qsim.GateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var metrics qsim.MetricsResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		if err := sim.ApplyGate(req.Name, req.Wires, req.Params); err != nil {
			return err
		}
		metrics.Trace, metrics.Purity = sim.GetMetrics()
		return nil
	})
	if err != nil {
		if kind, ok := gateErrorKind(err); ok {
			respondWithJSON(w, http.StatusBadRequest, qsim.ErrorResponse{Error: err.Error(), Kind: kind})
			return
		}
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, metrics)
}

func (h *SimHandler) applyNoise(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req qsim.NoiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var metrics qsim.MetricsResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		var err error
		switch req.Channel {
		case qsim.ChannelIdle:
			err = sim.ApplyNoise(req.Wire, req.Protected)
		case qsim.ChannelAmplitudeDamping:
			err = sim.ApplyAmplitudeDamping(req.Wire, req.Rate)
		case qsim.ChannelPhaseDamping:
			err = sim.ApplyPhaseDamping(req.Wire, req.Rate)
		case qsim.ChannelDepolarizing:
			err = sim.ApplyDepolarizing(req.Wire, req.Rate)
		}
		if err != nil {
			return err
		}
		metrics.Trace, metrics.Purity = sim.GetMetrics()
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, metrics)
}

func (h *SimHandler) measure(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req qsim.MeasureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var response qsim.MeasureResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		shots := sim.MeasureShots(req.Shots)
		response.Shots = make([][]int, len(shots))
		for i, s := range shots {
			response.Shots[i] = s.Ints()
		}
		response.Counts = quantum.CountOutcomes(shots)
		response.Frequencies = quantum.OutcomeFrequencies(response.Counts)
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *SimHandler) runCircuit(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req qsim.CircuitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	circuit, err := qsimcore.CircuitFromQASM(req.QASM)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, qsim.ErrorResponse{Error: err.Error(), Kind: qsim.ErrorKindInvalid})
		return
	}

	var response qsim.CircuitResponse
	err = h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		result, err := qsimcore.NewDevice(sim, req.Noisy).Run(circuit, req.Shots)
		if err != nil {
			return err
		}
		response = circuitResponse(result)
		return nil
	})
	if err != nil {
		if kind, ok := gateErrorKind(err); ok {
			respondWithJSON(w, http.StatusBadRequest, qsim.ErrorResponse{Error: err.Error(), Kind: kind})
			return
		}
		if errors.Is(err, qsimcore.ErrInvalidQubitCount) {
			respondWithJSON(w, http.StatusBadRequest, qsim.ErrorResponse{Error: err.Error(), Kind: qsim.ErrorKindInvalid})
			return
		}
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *SimHandler) probabilities(w http.ResponseWriter, id uuid.UUID) {
	var response qsim.ProbabilitiesResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		response.Probabilities = sim.Probabilities()
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *SimHandler) metrics(w http.ResponseWriter, id uuid.UUID) {
	var metrics qsim.MetricsResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		metrics.Trace, metrics.Purity = sim.GetMetrics()
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, metrics)
}

func (h *SimHandler) density(w http.ResponseWriter, id uuid.UUID) {
	var response qsim.DensityResponse
	err := h.sessions.WithSimulator(id, func(sim *qsimcore.Simulator) error {
		fingerprint, err := h.fingerprinter.Fingerprint(sim.State())
		if err != nil {
			return err
		}
		response.NumQubits = sim.NumQubits()
		response.Real, response.Imag = sim.DensityMatrix()
		response.Fingerprint = fingerprint
		return nil
	})
	if err != nil {
		respondWithSessionError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

func circuitResponse(result *qsimcore.RunResult) qsim.CircuitResponse {
	t := result.Telemetry
	return qsim.CircuitResponse{
		Counts:        result.Counts,
		Frequencies:   quantum.OutcomeFrequencies(result.Counts),
		Probabilities: result.Probabilities,
		Metrics: qsim.MetricsResponse{
			Trace:  result.Trace,
			Purity: result.Purity,
		},
		Telemetry: qsim.TelemetryResponse{
			NumQubits:     t.NumQubits,
			GateCount:     t.GateCount,
			TwoQubitCount: t.TwoQubitCount,
			CNOTCount:     t.CNOTCount,
			ProtectedIdle: t.ProtectedIdle,
			Depth:         t.Depth,
		},
	}
}

func isKnownAction(action string) bool {
	switch action {
	case "reset", "gate", "noise", "measure", "circuit", "probabilities", "metrics", "density":
		return true
	}
	return false
}

// gateErrorKind classifies catalog validation failures
func gateErrorKind(err error) (qsim.ErrorKind, bool) {
	switch {
	case errors.Is(err, qsimcore.ErrUnknownGate):
		return qsim.ErrorKindUnknownGate, true
	case errors.Is(err, qsimcore.ErrArityMismatch):
		return qsim.ErrorKindArityMismatch, true
	case errors.Is(err, qsimcore.ErrInvalidWire):
		return qsim.ErrorKindInvalidWire, true
	}
	return "", false
}

// respondWithSessionError maps session lookup failures onto status codes
func respondWithSessionError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	if errors.Is(err, qsim.ErrSessionNotFound) {
		statusCode = http.StatusNotFound
	} else if errors.Is(err, qsim.ErrSessionExpired) {
		statusCode = http.StatusGone
	}
	respondWithError(w, statusCode, err.Error())
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, qsim.ErrorResponse{
		Error: message,
	})
}
