package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casebuild/internal/adapters/caseconfig"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/adapters/shell"
	"go.trai.ch/casebuild/internal/adapters/telemetry"
	"go.trai.ch/casebuild/internal/adapters/teststatus"
	"go.trai.ch/casebuild/internal/app"
	"go.trai.ch/casebuild/internal/engine/builder"
	"go.trai.ch/casebuild/internal/engine/cleaner"
	"go.trai.ch/casebuild/internal/engine/testdriver"
	"go.trai.ch/zerr"
)

// newProvider wires real components without going through graft.
func newProvider() ComponentProvider {
	return func(context.Context) (*app.Components, error) {
		log := logger.New()
		log.SetOutput(&bytes.Buffer{})

		tel := telemetry.New()
		cases := caseconfig.NewStore(log)
		status := teststatus.NewStore()
		bld := builder.New(log, shell.NewExecutor(log), tel)

		return &app.Components{
			Orchestrator: app.New(cases, status, cleaner.New(log), bld, testdriver.New(log, bld, status), log),
			Logger:       log,
			Telemetry:    tel,
		}, nil
	}
}

func newCaseDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, caseconfig.ConfigFile),
		[]byte("MODEL: e3sm\nEXEROOT: "+filepath.Join(root, "bld")+"\n"), 0o644))
	return root
}

func TestRun_CleanAllSucceeds(t *testing.T) {
	root := newCaseDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bld", "atm", "obj"), 0o755))

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--clean-all", root}, &stderr, newProvider())

	assert.Equal(t, 0, code)
	assert.NoDirExists(t, filepath.Join(root, "bld"))
}

func TestRun_DryRunSucceeds(t *testing.T) {
	root := newCaseDir(t)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--dry-run", root}, &stderr, newProvider())

	assert.Equal(t, 0, code)
}

func TestRun_MissingCaseFails(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--clean-all", t.TempDir()}, &stderr, newProvider())

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "case")
}

func TestRun_ConflictingModesFail(t *testing.T) {
	root := newCaseDir(t)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--clean-all", "--model-only", root}, &stderr, newProvider())

	assert.Equal(t, 1, code)
}

func TestRun_ProviderFailureIsReported(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), nil, &stderr, func(context.Context) (*app.Components, error) {
		return nil, zerr.New("wiring broke")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring broke")
}
