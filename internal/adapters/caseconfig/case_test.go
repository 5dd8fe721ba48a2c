package caseconfig_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casebuild/internal/adapters/caseconfig"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/core/domain"
)

func newStore() *caseconfig.Store {
	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	return caseconfig.NewStore(log)
}

func writeCase(t *testing.T, values string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, caseconfig.ConfigFile), []byte(values), 0o644))
	return root
}

func TestOpen_MissingCase(t *testing.T) {
	_, err := newStore().Open(t.TempDir(), true, true)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestOpen_MalformedConfig(t *testing.T) {
	root := writeCase(t, "MODEL: [unterminated")
	_, err := newStore().Open(root, true, true)
	assert.Error(t, err)
}

func TestCase_GetAndValues(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\nEXEROOT: /scratch/bld\n")

	cse, err := newStore().Open(root, false, false)
	require.NoError(t, err)
	defer func() { _ = cse.Close() }()

	model, ok := cse.Get("MODEL")
	assert.True(t, ok)
	assert.Equal(t, "e3sm", model)

	_, ok = cse.Get("TESTCASE")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{
		"MODEL":   "e3sm",
		"EXEROOT": "/scratch/bld",
	}, cse.Values())
}

func TestCase_EnvOverlayShadowsConfig(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\nCOMPILER: gnu\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, caseconfig.EnvFile),
		[]byte("COMPILER=intel\nNETCDF_PATH=/opt/netcdf\n"), 0o644))

	cse, err := newStore().Open(root, false, false)
	require.NoError(t, err)
	defer func() { _ = cse.Close() }()

	compiler, ok := cse.Get("COMPILER")
	assert.True(t, ok)
	assert.Equal(t, "intel", compiler)

	netcdf, ok := cse.Get("NETCDF_PATH")
	assert.True(t, ok)
	assert.Equal(t, "/opt/netcdf", netcdf)

	// The overlay shadows reads but is part of the effective view.
	assert.Equal(t, "intel", cse.Values()["COMPILER"])
}

func TestCase_SetPersistsOnClose(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\n")

	cse, err := newStore().Open(root, true, false)
	require.NoError(t, err)
	require.NoError(t, cse.Set("BUILD_COMPLETE", "true"))
	require.NoError(t, cse.Close())

	reopened, err := newStore().Open(root, false, false)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	v, ok := reopened.Get("BUILD_COMPLETE")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestCase_SetRejectedWhenReadOnly(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\n")

	cse, err := newStore().Open(root, false, false)
	require.NoError(t, err)
	defer func() { _ = cse.Close() }()

	assert.ErrorIs(t, cse.Set("BUILD_COMPLETE", "true"), domain.ErrReadOnlyCase)
}

func TestCase_JournalRecordsChanges(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\n")

	cse, err := newStore().Open(root, true, true)
	require.NoError(t, err)
	require.NoError(t, cse.Set("BUILD_COMPLETE", "false"))
	require.NoError(t, cse.Set("BUILD_COMPLETE", "true"))
	require.NoError(t, cse.Close())

	data, err := os.ReadFile(filepath.Join(root, caseconfig.JournalFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "BUILD_COMPLETE=false")
	assert.Contains(t, lines[1], "BUILD_COMPLETE=true")
}

func TestCase_JournalAppends(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, caseconfig.JournalFile),
		[]byte("2026-01-01T00:00:00Z CASE_SETUP=done\n"), 0o644))

	cse, err := newStore().Open(root, true, true)
	require.NoError(t, err)
	require.NoError(t, cse.Set("BUILD_COMPLETE", "true"))
	require.NoError(t, cse.Close())

	data, err := os.ReadFile(filepath.Join(root, caseconfig.JournalFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "CASE_SETUP=done")
	assert.Contains(t, lines[1], "BUILD_COMPLETE=true")
}

func TestCase_CloseIsIdempotent(t *testing.T) {
	root := writeCase(t, "MODEL: e3sm\n")

	cse, err := newStore().Open(root, true, true)
	require.NoError(t, err)
	require.NoError(t, cse.Set("BUILD_COMPLETE", "true"))
	require.NoError(t, cse.Close())
	require.NoError(t, cse.Close())

	data, err := os.ReadFile(filepath.Join(root, caseconfig.JournalFile))
	require.NoError(t, err)
	// The second Close must not journal the change a second time.
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 1)
}
