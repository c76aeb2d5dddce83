package qsim

import (
	"time"

	"github.com/google/uuid"
)

// NoiseChannel names a noise operation exposed to clients
type NoiseChannel string

const (
	ChannelIdle             NoiseChannel = "idle"
	ChannelAmplitudeDamping NoiseChannel = "amplitude_damping"
	ChannelPhaseDamping     NoiseChannel = "phase_damping"
	ChannelDepolarizing     NoiseChannel = "depolarizing"
)

// ErrorKind classifies a failed gate request for clients
type ErrorKind string

const (
	ErrorKindUnknownGate   ErrorKind = "unknown_gate"
	ErrorKindArityMismatch ErrorKind = "arity_mismatch"
	ErrorKindInvalidWire   ErrorKind = "invalid_wire"
	ErrorKindInvalid       ErrorKind = "invalid_request"
)

const (
	// MaxShots bounds a single measure request
	MaxShots = 100000
	// DefaultTTLMinutes is applied when a create request carries no TTL
	DefaultTTLMinutes = 60
	// MaxTTLMinutes bounds session lifetime (7 days)
	MaxTTLMinutes = 10080
)

// SimSession describes one simulator instance owned by the service
type SimSession struct {
	SessionID  uuid.UUID `json:"session_id"`
	NumQubits  int       `json:"num_qubits"`
	Seeded     bool      `json:"seeded"`
	Seed       uint64    `json:"seed,omitempty"`
	Operations int       `json:"operations"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SessionCreateRequest represents a request to create a simulator session
type SessionCreateRequest struct {
	NumQubits  int     `json:"num_qubits"`
	Seed       *uint64 `json:"seed,omitempty"`
	TTLMinutes int     `json:"ttl_minutes,omitempty"`
}

// GateRequest applies one catalog gate
type GateRequest struct {
	Name   string    `json:"name"`
	Wires  []int     `json:"wires"`
	Params []float64 `json:"params"`
}

// NoiseRequest applies one noise channel to a wire
type NoiseRequest struct {
	Channel   NoiseChannel `json:"channel"`
	Wire      int          `json:"wire"`
	Rate      float64      `json:"rate,omitempty"`
	Protected bool         `json:"protected,omitempty"`
}

// MeasureRequest samples bitstrings from the current state
type MeasureRequest struct {
	Shots int `json:"shots"`
}

// CircuitRequest executes a whole OpenQASM program on a session
type CircuitRequest struct {
	QASM  string `json:"qasm"`
	Noisy bool   `json:"noisy"`
	Shots int    `json:"shots"`
}

// MetricsResponse reports trace and purity
type MetricsResponse struct {
	Trace  float64 `json:"trace"`
	Purity float64 `json:"purity"`
}

// SessionResponse represents the response when creating or querying a session
type SessionResponse struct {
	Session *SimSession      `json:"session"`
	Metrics *MetricsResponse `json:"metrics,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// MeasureResponse carries sampled bitstrings
type MeasureResponse struct {
	Shots       [][]int            `json:"shots"`
	Counts      map[string]int     `json:"counts"`
	Frequencies map[string]float64 `json:"frequencies"`
}

// ProbabilitiesResponse carries the computational-basis distribution
type ProbabilitiesResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// DensityResponse carries ρ flattened row-major
type DensityResponse struct {
	NumQubits   int       `json:"num_qubits"`
	Real        []float64 `json:"real"`
	Imag        []float64 `json:"imag"`
	Fingerprint string    `json:"fingerprint"`
}

// TelemetryResponse summarises an executed circuit
type TelemetryResponse struct {
	NumQubits     int `json:"num_qubits"`
	GateCount     int `json:"gate_count"`
	TwoQubitCount int `json:"two_qubit_count"`
	CNOTCount     int `json:"cnot_count"`
	ProtectedIdle int `json:"protected_idle"`
	Depth         int `json:"depth"`
}

// CircuitResponse reports the result of a circuit execution
type CircuitResponse struct {
	Counts        map[string]int     `json:"counts"`
	Frequencies   map[string]float64 `json:"frequencies"`
	Probabilities []float64          `json:"probabilities"`
	Metrics       MetricsResponse    `json:"metrics"`
	Telemetry     TelemetryResponse  `json:"telemetry"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"error_kind,omitempty"`
}

// Validate validates a session create request against the service qubit limit
func (r *SessionCreateRequest) Validate(maxQubits int) error {
	if r.NumQubits < 1 || r.NumQubits > maxQubits {
		return ErrInvalidQubitCount
	}

	if r.TTLMinutes == 0 {
		r.TTLMinutes = DefaultTTLMinutes
	}

	if r.TTLMinutes < 1 || r.TTLMinutes > MaxTTLMinutes {
		return ErrInvalidTTL
	}

	return nil
}

// Validate validates a gate request. Catalog and arity checks belong to the
// simulator; this only rejects structurally empty requests.
func (r *GateRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidGateName
	}
	return nil
}

// Validate validates a noise request
func (r *NoiseRequest) Validate() error {
	switch r.Channel {
	case ChannelIdle, ChannelAmplitudeDamping, ChannelPhaseDamping, ChannelDepolarizing:
		return nil
	default:
		return ErrInvalidChannel
	}
}

// Validate validates a measure request, defaulting to a single shot
func (r *MeasureRequest) Validate() error {
	if r.Shots == 0 {
		r.Shots = 1
	}
	if r.Shots < 1 || r.Shots > MaxShots {
		return ErrInvalidShots
	}
	return nil
}

// Validate validates a circuit request, defaulting to 1024 shots
func (r *CircuitRequest) Validate() error {
	if r.QASM == "" {
		return ErrEmptyCircuit
	}
	if r.Shots == 0 {
		r.Shots = 1024
	}
	if r.Shots < 1 || r.Shots > MaxShots {
		return ErrInvalidShots
	}
	return nil
}

// Custom errors
type SimError struct {
	Message string
}

func (e *SimError) Error() string {
	return e.Message
}

var (
	ErrInvalidQubitCount = &SimError{"qubit count out of range"}
	ErrInvalidTTL        = &SimError{"TTL must be between 1 and 10080 minutes"}
	ErrInvalidGateName   = &SimError{"gate name is required"}
	ErrInvalidChannel    = &SimError{"channel must be one of idle, amplitude_damping, phase_damping, depolarizing"}
	ErrInvalidShots      = &SimError{"shots must be between 1 and 100000"}
	ErrEmptyCircuit      = &SimError{"qasm source is required"}
	ErrSessionNotFound   = &SimError{"session not found"}
	ErrSessionExpired    = &SimError{"session has expired"}
)
