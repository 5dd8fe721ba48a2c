// Package cleaner removes prior build artifacts for a case.
package cleaner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cleaner implements ports.Cleaner against the on-disk build tree.
type Cleaner struct {
	logger ports.Logger
}

// New creates a new Cleaner.
func New(logger ports.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean performs the requested clean actions. An empty-normalized
// selection was already expanded to "all" by the resolver, so nil here
// only ever means "not requested".
func (c *Cleaner) Clean(ctx context.Context, cse ports.Case, clean *domain.Selection, cleanAll bool, cleanDepends *domain.Selection) error {
	exeroot := buildRoot(cse)
	cleaned := false

	if cleanAll {
		if err := c.cleanAll(exeroot); err != nil {
			return err
		}
		cleaned = true
	}

	for _, target := range clean.Resolve(domain.Components()) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.cleanTarget(exeroot, target); err != nil {
			return err
		}
		cleaned = true
	}

	for _, target := range cleanDepends.Resolve(domain.DependsObjects()) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.cleanDepends(exeroot, target); err != nil {
			return err
		}
		cleaned = true
	}

	if cleaned {
		if err := cse.Set("BUILD_COMPLETE", "false"); err != nil {
			return err
		}
	}

	return nil
}

// cleanAll removes the whole build root including the shared library
// install tree.
func (c *Cleaner) cleanAll(exeroot string) error {
	c.logger.Info("cleaning all build artifacts under " + exeroot)
	for _, dir := range []string{exeroot, filepath.Join(exeroot, "lib"), filepath.Join(exeroot, "include")} {
		if err := os.RemoveAll(dir); err != nil {
			return zerr.Wrap(err, "failed to remove build directory")
		}
	}
	return nil
}

// cleanTarget removes the object directory of one target, keeping its
// logs and dependency files.
func (c *Cleaner) cleanTarget(exeroot string, target domain.Target) error {
	dir := filepath.Join(exeroot, target.String(), "obj")
	c.logger.Info("cleaning " + dir)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clean target"), "target", target.String())
	}
	return nil
}

// cleanDepends removes the dependency file of one target so the next
// build re-resolves its dependencies.
func (c *Cleaner) cleanDepends(exeroot string, target domain.Target) error {
	path := filepath.Join(exeroot, "Depends."+target.String())
	c.logger.Info("removing " + path)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove dependency file"), "target", target.String())
	}
	return nil
}

// buildRoot resolves the case's build root, defaulting to bld/ under
// the case root.
func buildRoot(cse ports.Case) string {
	if exeroot, ok := cse.Get("EXEROOT"); ok && exeroot != "" {
		return exeroot
	}
	return filepath.Join(cse.Root(), "bld")
}
