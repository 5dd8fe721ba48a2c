package commands

import (
	"strings"

	"go.trai.ch/casebuild/internal/core/domain"
)

// selectionValue is a pflag.Value for the clean selection flags.
// The bare flag (pflag's NoOptDefVal path) selects the whole universe;
// explicit comma-separated members select exactly those.
type selectionValue struct {
	universe []domain.Target
	sel      *domain.Selection
}

func newSelection(universe []domain.Target) *selectionValue {
	return &selectionValue{universe: universe}
}

// Set accumulates across repeated uses of the flag.
func (v *selectionValue) Set(raw string) error {
	if raw == "" || raw == "all" {
		if v.sel == nil {
			v.sel = domain.SelectAll()
		}
		return nil
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		target, err := domain.ParseTarget(part, v.universe)
		if err != nil {
			return err
		}
		if v.sel == nil || v.sel.All {
			v.sel = domain.SelectTargets()
		}
		v.sel.Targets = append(v.sel.Targets, target)
	}

	if v.sel == nil {
		v.sel = domain.SelectAll()
	}
	return nil
}

func (v *selectionValue) Type() string { return "targets" }

func (v *selectionValue) String() string {
	if v.sel == nil {
		return ""
	}
	if v.sel.All {
		return "all"
	}
	return joinTargets(v.sel.Targets)
}

// Selection returns the resolved selection, nil when never requested.
func (v *selectionValue) Selection() *domain.Selection {
	return v.sel
}

// targetListValue is a pflag.Value for the build list. An empty value
// leaves the list unset: "--build=" means no build list was provided,
// never an empty build.
type targetListValue struct {
	universe []domain.Target
	targets  []domain.Target
}

func newTargetList(universe []domain.Target) *targetListValue {
	return &targetListValue{universe: universe}
}

// Set accumulates across repeated uses of the flag.
func (v *targetListValue) Set(raw string) error {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		target, err := domain.ParseTarget(part, v.universe)
		if err != nil {
			return err
		}
		v.targets = append(v.targets, target)
	}
	return nil
}

func (v *targetListValue) Type() string { return "targets" }

func (v *targetListValue) String() string {
	return joinTargets(v.targets)
}

// Targets returns the accumulated list, nil when none were named.
func (v *targetListValue) Targets() []domain.Target {
	return v.targets
}

func joinTargets(targets []domain.Target) string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}
