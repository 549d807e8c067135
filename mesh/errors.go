package mesh

import "errors"

// Sentinel errors for the relaxation loop and its collaborators, per the
// error taxonomy in spec.md §7. UnknownOption has no runtime counterpart:
// the functional-options pattern used here (see options.go) makes an
// unrecognized option a compile-time error instead, which is strictly
// stronger than the runtime check the original took — see SPEC_FULL.md §7.
var (
	// ErrInvalidParameter covers non-positive MaxIter/MinEdgeLength, a
	// malformed bbox, a size field everywhere finer than MinEdgeLength, or
	// fewer than two sub-domains in a multiscale run (each SubDomain pairs
	// its domain with its size field, so the two lists cannot differ in
	// length).
	ErrInvalidParameter = errors.New("mesh: invalid parameter")

	// ErrEmptyInitialization is returned when zero seed points survive
	// rejection sampling and interior filtering.
	ErrEmptyInitialization = errors.New("mesh: empty initial point set")
)
