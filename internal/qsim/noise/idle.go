package noise

import "github.com/jaskrrish/Go-QSim/internal/qsim/quantum"

const (
	// IdleGamma is the amplitude damping rate of an unprotected idle window
	IdleGamma = 0.05
	// IdleLambda is the dephasing rate of an unprotected idle window
	IdleLambda = 0.02
	// ProtectedSuppression scales both idle rates when dynamical decoupling
	// protects the wire (80% effective)
	ProtectedSuppression = 0.2
)

// IdleRates returns the (gamma, lambda) pair used for an idle window
func IdleRates(protected bool) (gamma, lambda float64) {
	factor := 1.0
	if protected {
		factor = ProtectedSuppression
	}
	return IdleGamma * factor, IdleLambda * factor
}

// ApplyIdleNoise applies amplitude damping and then dephasing to wire
func ApplyIdleNoise(rho *quantum.DensityMatrix, wire int, protected bool) error {
	gamma, lambda := IdleRates(protected)

	if err := ApplyAmplitudeDamping(rho, wire, gamma); err != nil {
		return err
	}
	return ApplyDephasing(rho, wire, lambda)
}
