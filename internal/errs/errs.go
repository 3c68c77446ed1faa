// Package errs declares the sentinel error kinds named in spec §7, so
// callers across packages can distinguish them with errors.Is.
package errs

import "errors"

var (
	// ErrIO covers load or result-file write failures.
	ErrIO = errors.New("io error")
	// ErrInvalidIndex covers a start/end vertex id outside [0, |V|).
	ErrInvalidIndex = errors.New("invalid vertex index")
	// ErrEmptyMesh covers an operation attempted on a mesh with no vertices.
	ErrEmptyMesh = errors.New("empty mesh")
	// ErrDegenerateTopology covers a mesh with no faces where one is required.
	ErrDegenerateTopology = errors.New("mesh has no faces")
	// ErrUnsupported covers a dispatcher that could not choose a solver.
	ErrUnsupported = errors.New("unsupported surface")
)
