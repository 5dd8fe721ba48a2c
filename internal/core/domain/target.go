// Package domain contains the core domain models for case build orchestration.
package domain

import "go.trai.ch/zerr"

// Target identifies a buildable object: a model component or a shared library.
// The universe of targets is fixed; callers never extend it at runtime.
type Target string

// Model components.
const (
	TargetCPL Target = "cpl" // coupler
	TargetATM Target = "atm" // atmosphere
	TargetLND Target = "lnd" // land
	TargetICE Target = "ice" // sea ice
	TargetOCN Target = "ocn" // ocean
	TargetROF Target = "rof" // river runoff
	TargetGLC Target = "glc" // land ice
	TargetWAV Target = "wav" // wave
	TargetESP Target = "esp" // external system processor
	TargetIAC Target = "iac" // integrated assessment coupler
)

// Shared libraries, built before any component.
const (
	TargetGPTL     Target = "gptl"     // timing library
	TargetMCT      Target = "mct"      // model coupling toolkit
	TargetPIO      Target = "pio"      // parallel I/O
	TargetCSMShare Target = "csmshare" // shared utilities
)

// Components returns the model components in canonical order.
func Components() []Target {
	return []Target{
		TargetCPL, TargetATM, TargetLND, TargetICE, TargetOCN,
		TargetROF, TargetGLC, TargetWAV, TargetESP, TargetIAC,
	}
}

// SharedLibs returns the shared libraries in build order.
// csmshare comes last because it links against the other three.
func SharedLibs() []Target {
	return []Target{TargetGPTL, TargetMCT, TargetPIO, TargetCSMShare}
}

// AllObjects returns the union of components and shared libraries.
func AllObjects() []Target {
	return append(Components(), SharedLibs()...)
}

// DependsObjects returns the universe for dependency cleaning:
// the components plus the shared utilities library.
func DependsObjects() []Target {
	return append(Components(), TargetCSMShare)
}

// IsComponent reports whether the target is a model component.
func (t Target) IsComponent() bool {
	for _, c := range Components() {
		if t == c {
			return true
		}
	}
	return false
}

// IsSharedLib reports whether the target is a shared library.
func (t Target) IsSharedLib() bool {
	for _, l := range SharedLibs() {
		if t == l {
			return true
		}
	}
	return false
}

// String returns the target identifier.
func (t Target) String() string {
	return string(t)
}

// ParseTarget validates a raw identifier against the given universe.
func ParseTarget(s string, universe []Target) (Target, error) {
	for _, t := range universe {
		if Target(s) == t {
			return t, nil
		}
	}
	return "", zerr.With(ErrUnknownTarget, "target", s)
}
