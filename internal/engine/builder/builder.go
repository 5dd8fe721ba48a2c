// Package builder implements the plain build delegate.
package builder

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/casebuild/internal/provenance"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Builder drives the native build tool for shared libraries and model
// components. It does not compute dependency graphs itself; the native
// tool owns that.
type Builder struct {
	logger    ports.Logger
	executor  ports.Executor
	telemetry ports.Telemetry
}

// New creates a new Builder.
func New(logger ports.Logger, executor ports.Executor, telemetry ports.Telemetry) *Builder {
	return &Builder{
		logger:    logger,
		executor:  executor,
		telemetry: telemetry,
	}
}

// Build builds the shared libraries and components selected by opts.
// Tool failures are reported through the boolean outcome; only
// infrastructure faults are errors.
func (b *Builder) Build(ctx context.Context, cse ports.Case, opts domain.BuildOptions) (bool, error) {
	libs, comps := plan(opts)

	if opts.DryRun {
		b.logPlan(libs, comps, opts)
		return true, nil
	}

	if opts.SaveProvenance {
		path, err := provenance.Save(cse)
		if err != nil {
			return false, err
		}
		b.logger.Info("saved build provenance to " + path)
	}

	exeroot := buildRoot(cse)
	tool := "make"
	if opts.Ninja {
		tool = "ninja"
	}

	// Shared libraries build sequentially; each links the previous ones.
	for _, lib := range libs {
		ok, err := b.buildTarget(ctx, cse, exeroot, lib, tool)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	ok, err := b.buildComponents(ctx, cse, exeroot, comps, tool, opts.SeparateBuilds)
	if err != nil {
		return false, err
	}

	if ok && !opts.SharedlibOnly {
		if err := cse.Set("BUILD_COMPLETE", "true"); err != nil {
			return false, err
		}
	}

	return ok, nil
}

func (b *Builder) buildComponents(ctx context.Context, cse ports.Case, exeroot string, comps []domain.Target, tool string, separate bool) (bool, error) {
	if len(comps) == 0 {
		return true, nil
	}

	if !separate {
		ok := true
		for _, comp := range comps {
			cok, err := b.buildTarget(ctx, cse, exeroot, comp, tool)
			if err != nil {
				return false, err
			}
			ok = ok && cok
		}
		return ok, nil
	}

	var mu sync.Mutex
	ok := true
	g, gctx := errgroup.WithContext(ctx)
	for _, comp := range comps {
		g.Go(func() error {
			cok, err := b.buildTarget(gctx, cse, exeroot, comp, tool)
			if err != nil {
				return err
			}
			if !cok {
				mu.Lock()
				ok = false
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return ok, nil
}

// buildTarget runs the native tool in the target's build directory,
// streaming output to both the telemetry vertex and the target's
// build log file.
func (b *Builder) buildTarget(ctx context.Context, cse ports.Case, exeroot string, target domain.Target, tool string) (bool, error) {
	dir := filepath.Join(exeroot, target.String())
	if err := os.MkdirAll(filepath.Join(dir, "obj"), 0o755); err != nil { //nolint:gosec // build tree is world-readable
		return false, zerr.Wrap(err, "failed to create build directory")
	}

	logFile, err := os.Create(filepath.Join(exeroot, target.String()+".bldlog")) //nolint:gosec // path built from the fixed target set
	if err != nil {
		return false, zerr.Wrap(err, "failed to create build log")
	}
	defer func() { _ = logFile.Close() }()

	vertex := b.telemetry.Record("build " + target.String())

	cmd := &domain.Command{
		Name: tool,
		Dir:  dir,
		Env: map[string]string{
			"CASEROOT": cse.Root(),
			"COMP":     target.String(),
		},
	}

	execErr := b.executor.Execute(ctx,
		cmd,
		io.MultiWriter(vertex.Stdout(), logFile),
		io.MultiWriter(vertex.Stderr(), logFile),
	)
	vertex.Complete(execErr)

	if execErr != nil {
		var exitErr *exec.ExitError
		if errors.As(execErr, &exitErr) {
			// Compile failure: an outcome, not an orchestration error.
			b.logger.Warn("build of " + target.String() + " failed, see " + logFile.Name())
			return false, nil
		}
		return false, execErr
	}

	return true, nil
}

func (b *Builder) logPlan(libs, comps []domain.Target, opts domain.BuildOptions) {
	tool := "make"
	if opts.Ninja {
		tool = "ninja"
	}
	b.logger.Info("dry run: would build with " + tool +
		" sharedlibs [" + joinTargets(libs) + "]" +
		" components [" + joinTargets(comps) + "]")
}

func joinTargets(targets []domain.Target) string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

// plan splits the requested scope into shared libraries (in build
// order) and components. An explicit build list selects exactly its
// members; otherwise the mode flags select whole universes.
func plan(opts domain.BuildOptions) (libs, comps []domain.Target) {
	if opts.BuildList != nil {
		requested := make(map[domain.Target]bool, len(opts.BuildList))
		for _, t := range opts.BuildList {
			requested[t] = true
		}
		for _, lib := range domain.SharedLibs() {
			if requested[lib] {
				libs = append(libs, lib)
			}
		}
		for _, comp := range domain.Components() {
			if requested[comp] {
				comps = append(comps, comp)
			}
		}
		return libs, comps
	}

	if !opts.ModelOnly {
		libs = domain.SharedLibs()
	}
	if !opts.SharedlibOnly {
		comps = domain.Components()
	}
	return libs, comps
}

// buildRoot resolves the case's build root, defaulting to bld/ under
// the case root.
func buildRoot(cse ports.Case) string {
	if exeroot, ok := cse.Get("EXEROOT"); ok && exeroot != "" {
		return exeroot
	}
	return filepath.Join(cse.Root(), "bld")
}
