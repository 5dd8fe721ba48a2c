package testdriver

import (
	"context"
	"strconv"

	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// systemTest is the shared build procedure of all system test kinds.
// The phases run through the plain builder; the driver owns marking
// them PEND and recording the outcome in the test status log.
type systemTest struct {
	name    string
	cse     ports.Case
	builder ports.Builder
	status  ports.StatusStore
	logger  ports.Logger

	// modelPasses is how often the model phase builds the executable.
	// Tests comparing two executables set it to 2.
	modelPasses int
}

func newSmoke(base systemTest) *systemTest {
	base.modelPasses = 1
	return &base
}

func newExactRestart(base systemTest) *systemTest {
	// Restart happens at run time against the same executable.
	base.modelPasses = 1
	return &base
}

func newRestartPELayout(base systemTest, cse ports.Case) (*systemTest, error) {
	// The second executable is built with a changed processor layout,
	// which only the e3sm build tree supports.
	if model, _ := cse.Get("MODEL"); model != "e3sm" {
		return nil, zerr.With(zerr.New("test requires separate-build support"), "test_name", base.name)
	}
	base.modelPasses = 2
	return &base, nil
}

func newModifiedTaskCount(base systemTest, cse ports.Case) (*systemTest, error) {
	ntasks, ok := cse.Get("NTASKS")
	if !ok {
		return nil, zerr.With(zerr.New("case does not define NTASKS"), "test_name", base.name)
	}
	if _, err := strconv.Atoi(ntasks); err != nil {
		return nil, zerr.Wrap(err, "invalid NTASKS value")
	}
	base.modelPasses = 1
	return &base, nil
}

// Build runs the test's build phases, recording each in the status log.
func (d *systemTest) Build(ctx context.Context, opts domain.TestBuildOptions) (bool, error) {
	rec, err := d.status.Open(d.cse.Root())
	if err != nil {
		return false, err
	}
	defer func() { _ = rec.Close() }()

	d.logger.Info("building system test " + d.name)

	if !opts.ModelOnly {
		ok, err := d.runPhase(ctx, rec, domain.PhaseSharedlibBuild, 1, domain.BuildOptions{
			SharedlibOnly:  true,
			SaveProvenance: true,
			Ninja:          opts.Ninja,
			DryRun:         opts.DryRun,
			SeparateBuilds: opts.SeparateBuilds,
		})
		if err != nil || !ok {
			return false, err
		}
	}

	if !opts.SharedlibOnly {
		return d.runPhase(ctx, rec, domain.PhaseModelBuild, d.modelPasses, domain.BuildOptions{
			ModelOnly:      true,
			SaveProvenance: true,
			Ninja:          opts.Ninja,
			DryRun:         opts.DryRun,
			SeparateBuilds: opts.SeparateBuilds,
		})
	}

	return true, nil
}

func (d *systemTest) runPhase(ctx context.Context, rec ports.StatusRecorder, phase domain.Phase, passes int, opts domain.BuildOptions) (bool, error) {
	if err := rec.SetStatus(phase, domain.StatusPend, ""); err != nil {
		return false, err
	}

	ok := true
	for i := 0; i < passes && ok; i++ {
		passOK, err := d.builder.Build(ctx, d.cse, opts)
		if err != nil {
			_ = rec.SetStatus(phase, domain.StatusFail, "build error")
			return false, err
		}
		ok = ok && passOK
	}

	status, comment := domain.StatusPass, ""
	if !ok {
		status, comment = domain.StatusFail, "build failed"
	}
	if err := rec.SetStatus(phase, status, comment); err != nil {
		return false, err
	}
	return ok, nil
}
