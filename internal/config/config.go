// Package config loads the tuning knobs behind the numeric solvers:
// metric differencing step, shooting-method tolerances, and
// conjugate-gradient iteration caps. Defaults match the fixed
// constants of the computation engine; a file overrides them.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// Tuning holds every solver constant that the engine otherwise treats
// as a literal. Grouped under a single [Tuning] section. MetricStep is
// read but not forwarded to any solver: pkg/surface always
// differences with its own MetricStep constant.
type Tuning struct {
	MetricStep           float64
	ShootingPerturbation float64
	ShootingTolerance    float64
	ShootingMaxIters     int

	HeatMaxIters    int
	HeatTolerance   float64
	PoissonMaxIters int
	PoissonTol      float64

	DescentMargin    float64
	PlateauTolerance float64
	AreaEpsilon      float64
}

type wrapper struct {
	Tuning Tuning
}

// Default returns the tuning parameters fixed by the numerical
// contract: h=1e-4 for metric differencing, 1e-3 for the shooting
// Jacobian, 1e-6 for CG tolerance, 1e-9 for strict descent, 1e-12 for
// area/determinant degeneracy.
func Default() Tuning {
	return Tuning{
		MetricStep:           1e-4,
		ShootingPerturbation: 1e-3,
		ShootingTolerance:    1e-3,
		ShootingMaxIters:     8,

		HeatMaxIters:    600,
		HeatTolerance:   1e-6,
		PoissonMaxIters: 1000,
		PoissonTol:      1e-6,

		DescentMargin:    1e-9,
		PlateauTolerance: 1e-6,
		AreaEpsilon:      1e-12,
	}
}

// Load reads a gcfg-formatted file into a Tuning struct seeded with
// Default(), so a file only needs to mention the keys it overrides.
func Load(path string) (Tuning, error) {
	w := wrapper{Tuning: Default()}
	if err := gcfg.ReadFileInto(&w, path); err != nil {
		return Tuning{}, fmt.Errorf("reading tuning config %s: %w", path, err)
	}
	return w.Tuning, nil
}
