package qsim

import (
	"fmt"

	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
)

// Device executes whole circuits on a Simulator. With noise enabled, every
// gate is followed by unprotected idle noise on each wire it touched, and a
// DDSequence operation applies protected idle noise to its wires.
type Device struct {
	sim   *Simulator
	noisy bool
}

// RunResult contains the outcome of a sampled circuit execution
type RunResult struct {
	Shots         []quantum.Outcome
	Counts        map[string]int
	Probabilities []float64
	Trace         float64
	Purity        float64
	Telemetry     Telemetry
}

// NewDevice wraps sim
func NewDevice(sim *Simulator, noisy bool) *Device {
	return &Device{
		sim:   sim,
		noisy: noisy,
	}
}

// Simulator returns the underlying simulator
func (d *Device) Simulator() *Simulator {
	return d.sim
}

// Execute resets the simulator and applies the circuit. The circuit is
// validated first; on error the simulator state is untouched.
func (d *Device) Execute(c *Circuit) error {
	if c.NumQubits != d.sim.NumQubits() {
		return fmt.Errorf("%w: circuit has %d qubits, device has %d",
			ErrInvalidQubitCount, c.NumQubits, d.sim.NumQubits())
	}
	if err := c.Validate(); err != nil {
		return err
	}

	d.sim.Reset()
	for i, op := range c.Operations {
		if err := d.apply(op); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Name, err)
		}
	}

	return nil
}

// Run executes the circuit and samples shots from the final state
func (d *Device) Run(c *Circuit, shots int) (*RunResult, error) {
	if err := d.Execute(c); err != nil {
		return nil, err
	}

	samples := d.sim.MeasureShots(shots)
	trace, purity := d.sim.GetMetrics()

	return &RunResult{
		Shots:         samples,
		Counts:        quantum.CountOutcomes(samples),
		Probabilities: d.sim.Probabilities(),
		Trace:         trace,
		Purity:        purity,
		Telemetry:     c.Telemetry(),
	}, nil
}

func (d *Device) apply(op quantum.Instruction) error {
	if op.Name == DDSequence {
		if !d.noisy {
			return nil
		}
		for _, w := range op.Wires {
			if err := d.sim.ApplyNoise(w, true); err != nil {
				return err
			}
		}
		return nil
	}

	if err := d.sim.ApplyGate(op.Name, op.Wires, op.Params); err != nil {
		return err
	}

	if d.noisy {
		for _, w := range op.Wires {
			if err := d.sim.ApplyNoise(w, false); err != nil {
				return err
			}
		}
	}
	return nil
}
