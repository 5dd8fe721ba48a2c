package cleaner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports/mocks"
	"go.trai.ch/casebuild/internal/engine/cleaner"
	"go.uber.org/mock/gomock"
)

func newCleaner() *cleaner.Cleaner {
	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	return cleaner.New(log)
}

// newCase wires a mock case whose EXEROOT points at a temp build tree.
func newCase(t *testing.T) (*mocks.MockCase, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	exeroot := t.TempDir()

	cse := mocks.NewMockCase(ctrl)
	cse.EXPECT().Get("EXEROOT").Return(exeroot, true).AnyTimes()
	return cse, exeroot
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestClean_SubsetRemovesOnlyRequestedObjects(t *testing.T) {
	cse, exeroot := newCase(t)
	touch(t, filepath.Join(exeroot, "atm", "obj", "main.o"))
	touch(t, filepath.Join(exeroot, "atm.bldlog"))
	touch(t, filepath.Join(exeroot, "lnd", "obj", "main.o"))

	cse.EXPECT().Set("BUILD_COMPLETE", "false").Return(nil).Times(1)

	err := newCleaner().Clean(context.Background(), cse,
		domain.SelectTargets(domain.TargetATM), false, nil)
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(exeroot, "atm", "obj"))
	assert.FileExists(t, filepath.Join(exeroot, "atm.bldlog"))
	assert.DirExists(t, filepath.Join(exeroot, "lnd", "obj"))
}

func TestClean_AllRemovesBuildRoot(t *testing.T) {
	cse, exeroot := newCase(t)
	touch(t, filepath.Join(exeroot, "atm", "obj", "main.o"))
	touch(t, filepath.Join(exeroot, "lib", "libpio.a"))
	touch(t, filepath.Join(exeroot, "include", "pio.h"))

	cse.EXPECT().Set("BUILD_COMPLETE", "false").Return(nil).Times(1)

	err := newCleaner().Clean(context.Background(), cse, nil, true, nil)
	require.NoError(t, err)

	assert.NoDirExists(t, exeroot)
}

func TestClean_DependsRemovesDependencyFiles(t *testing.T) {
	cse, exeroot := newCase(t)
	touch(t, filepath.Join(exeroot, "Depends.atm"))
	touch(t, filepath.Join(exeroot, "Depends.lnd"))

	cse.EXPECT().Set("BUILD_COMPLETE", "false").Return(nil).Times(1)

	err := newCleaner().Clean(context.Background(), cse,
		nil, false, domain.SelectTargets(domain.TargetATM, domain.TargetCSMShare))
	require.NoError(t, err)

	// Depends.csmshare never existed; its absence is not an error.
	assert.NoFileExists(t, filepath.Join(exeroot, "Depends.atm"))
	assert.FileExists(t, filepath.Join(exeroot, "Depends.lnd"))
}

func TestClean_NothingRequestedLeavesCaseUntouched(t *testing.T) {
	cse, _ := newCase(t)
	// No Set expectation: BUILD_COMPLETE must stay as-is.

	err := newCleaner().Clean(context.Background(), cse, nil, false, nil)
	require.NoError(t, err)
}

func TestClean_DefaultsToBldUnderCaseRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	exeroot := filepath.Join(root, "bld")
	touch(t, filepath.Join(exeroot, "ocn", "obj", "main.o"))

	cse := mocks.NewMockCase(ctrl)
	cse.EXPECT().Get("EXEROOT").Return("", false).AnyTimes()
	cse.EXPECT().Root().Return(root).AnyTimes()
	cse.EXPECT().Set("BUILD_COMPLETE", "false").Return(nil).Times(1)

	err := newCleaner().Clean(context.Background(), cse,
		domain.SelectTargets(domain.TargetOCN), false, nil)
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(exeroot, "ocn", "obj"))
}
