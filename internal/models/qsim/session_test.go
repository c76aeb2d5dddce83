package qsim

import "testing"

func TestSessionCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		req         SessionCreateRequest
		expectedErr error
		expectedTTL int
	}{
		{"Defaults TTL", SessionCreateRequest{NumQubits: 2}, nil, DefaultTTLMinutes},
		{"Keeps TTL", SessionCreateRequest{NumQubits: 2, TTLMinutes: 5}, nil, 5},
		{"No qubits", SessionCreateRequest{NumQubits: 0}, ErrInvalidQubitCount, 0},
		{"Too many qubits", SessionCreateRequest{NumQubits: 11}, ErrInvalidQubitCount, 0},
		{"TTL too long", SessionCreateRequest{NumQubits: 1, TTLMinutes: MaxTTLMinutes + 1}, ErrInvalidTTL, MaxTTLMinutes + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(10)
			if err != tt.expectedErr {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			if tt.req.TTLMinutes != tt.expectedTTL {
				t.Errorf("expected TTL %d, got %d", tt.expectedTTL, tt.req.TTLMinutes)
			}
		})
	}
}

func TestRequestDefaults(t *testing.T) {
	m := MeasureRequest{}
	if err := m.Validate(); err != nil || m.Shots != 1 {
		t.Errorf("expected 1 shot by default, got %d (%v)", m.Shots, err)
	}

	c := CircuitRequest{QASM: "OPENQASM 2.0;"}
	if err := c.Validate(); err != nil || c.Shots != 1024 {
		t.Errorf("expected 1024 shots by default, got %d (%v)", c.Shots, err)
	}

	if err := (&CircuitRequest{}).Validate(); err != ErrEmptyCircuit {
		t.Errorf("expected ErrEmptyCircuit, got %v", err)
	}
	if err := (&MeasureRequest{Shots: -1}).Validate(); err != ErrInvalidShots {
		t.Errorf("expected ErrInvalidShots, got %v", err)
	}
	if err := (&GateRequest{}).Validate(); err != ErrInvalidGateName {
		t.Errorf("expected ErrInvalidGateName, got %v", err)
	}
	if err := (&NoiseRequest{Channel: "thermal"}).Validate(); err != ErrInvalidChannel {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
}
