// Package app implements the build orchestration layer for casebuild.
package app

import (
	"context"

	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request is the resolved outcome of mode resolution: exactly one mode
// is active, selections are normalized, and every field is immutable
// from here on.
type Request struct {
	CaseRoot       string
	SharedlibOnly  bool
	ModelOnly      bool
	BuildList      []domain.Target // nil when no build list was requested
	Clean          *domain.Selection
	CleanAll       bool
	CleanDepends   *domain.Selection
	SaveProvenance bool
	SeparateBuilds bool
	Ninja          bool
	DryRun         bool
}

// cleanRequested reports whether any clean-related selector is present.
func (r Request) cleanRequested() bool {
	return r.Clean.Requested() || r.CleanAll || r.CleanDepends.Requested()
}

// Orchestrator dispatches one resolved request to exactly one of
// clean, test build, or plain build.
type Orchestrator struct {
	cases   ports.CaseStore
	status  ports.StatusStore
	cleaner ports.Cleaner
	builder ports.Builder
	drivers ports.DriverFactory
	logger  ports.Logger
}

// New creates a new Orchestrator.
func New(
	cases ports.CaseStore,
	status ports.StatusStore,
	cleaner ports.Cleaner,
	builder ports.Builder,
	drivers ports.DriverFactory,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		cases:   cases,
		status:  status,
		cleaner: cleaner,
		builder: builder,
		drivers: drivers,
		logger:  logger,
	}
}

// Run opens the case, performs exactly one action, and reports the
// aggregate success. The case handle is closed on every exit path.
func (o *Orchestrator) Run(ctx context.Context, req Request) (ok bool, err error) {
	cse, err := o.cases.Open(req.CaseRoot, true, true)
	if err != nil {
		return false, zerr.Wrap(err, "failed to open case")
	}
	defer func() {
		if cerr := cse.Close(); cerr != nil && err == nil {
			ok, err = false, zerr.Wrap(cerr, "failed to close case")
		}
	}()

	// Separate builds and the ninja backend only exist in the e3sm
	// build tree; force them off everywhere else.
	if model, _ := cse.Get("MODEL"); model != "e3sm" && (req.Ninja || req.SeparateBuilds) {
		o.logger.Warn("--ninja and --separate-builds are only supported for e3sm cases, ignoring")
		req.Ninja = false
		req.SeparateBuilds = false
	}

	if req.cleanRequested() {
		if err := o.cleaner.Clean(ctx, cse, req.Clean, req.CleanAll, req.CleanDepends); err != nil {
			return false, err
		}
		return true, nil
	}

	if testName, isTest := cse.Get("TESTCASE"); isTest && testName != "" {
		return o.runTestBuild(ctx, cse, testName, req)
	}

	return o.builder.Build(ctx, cse, domain.BuildOptions{
		SharedlibOnly:  req.SharedlibOnly,
		ModelOnly:      req.ModelOnly,
		BuildList:      req.BuildList,
		SaveProvenance: req.SaveProvenance,
		SeparateBuilds: req.SeparateBuilds,
		Ninja:          req.Ninja,
		DryRun:         req.DryRun,
	})
}

func (o *Orchestrator) runTestBuild(ctx context.Context, cse ports.Case, testName string, req Request) (bool, error) {
	driver, err := o.drivers.Find(testName, cse)
	if err != nil {
		// Record the failure before propagating so the test framework
		// never sees a missing phase entry. The original error is
		// returned unmodified.
		o.recordInitFailure(req, err)
		return false, err
	}

	if req.BuildList != nil {
		return false, zerr.With(domain.ErrBuildListWithTest, "test_name", testName)
	}

	return driver.Build(ctx, domain.TestBuildOptions{
		SharedlibOnly:  req.SharedlibOnly,
		ModelOnly:      req.ModelOnly,
		Ninja:          req.Ninja,
		DryRun:         req.DryRun,
		SeparateBuilds: req.SeparateBuilds,
	})
}

// recordInitFailure durably marks the phase the failed initialization
// would have run. Failures here are logged, never returned, so they
// cannot mask the original error.
func (o *Orchestrator) recordInitFailure(req Request, cause error) {
	phase := domain.PhaseSharedlibBuild
	if req.ModelOnly {
		phase = domain.PhaseModelBuild
	}

	rec, err := o.status.Open(req.CaseRoot)
	if err != nil {
		o.logger.Error(zerr.Wrap(err, "failed to open test status log"))
		return
	}
	defer func() { _ = rec.Close() }()

	if err := rec.SetStatus(phase, domain.StatusFail, "case build initialization failed: "+cause.Error()); err != nil {
		o.logger.Error(zerr.Wrap(err, "failed to record test status"))
	}
}
