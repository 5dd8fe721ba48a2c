package testdriver_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/casebuild/internal/core/ports/mocks"
	"go.trai.ch/casebuild/internal/engine/testdriver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type driverMocks struct {
	builder *mocks.MockBuilder
	status  *mocks.MockStatusStore
	rec     *mocks.MockStatusRecorder
	cse     *mocks.MockCase
}

func newFactory(t *testing.T) (*testdriver.Factory, *driverMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &driverMocks{
		builder: mocks.NewMockBuilder(ctrl),
		status:  mocks.NewMockStatusStore(ctrl),
		rec:     mocks.NewMockStatusRecorder(ctrl),
		cse:     mocks.NewMockCase(ctrl),
	}
	m.cse.EXPECT().Root().Return("/case").AnyTimes()

	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	return testdriver.New(log, m.builder, m.status), m
}

// expectPhase wires the PEND-then-outcome status sequence for one phase.
func (m *driverMocks) expectPhase(phase domain.Phase, outcome domain.Status, comment string) {
	gomock.InOrder(
		m.rec.EXPECT().SetStatus(phase, domain.StatusPend, "").Return(nil),
		m.rec.EXPECT().SetStatus(phase, outcome, comment).Return(nil),
	)
}

func TestFind_UnknownTestKind(t *testing.T) {
	f, m := newFactory(t)

	_, err := f.Find("XYZ.f19_g16", m.cse)
	assert.ErrorIs(t, err, domain.ErrUnknownTest)

	_, err = f.Find("f19_g16", m.cse)
	assert.ErrorIs(t, err, domain.ErrUnknownTest)
}

func TestFind_DispatchesOnLeadingPrefix(t *testing.T) {
	f, m := newFactory(t)

	for _, name := range []string{"SMS.f19_g16", "SMS_D.f19_g16", "ERS_Ld3.f19_g16"} {
		driver, err := f.Find(name, m.cse)
		require.NoError(t, err, name)
		assert.NotNil(t, driver, name)
	}
}

func TestFind_RestartPELayoutRequiresE3SM(t *testing.T) {
	f, m := newFactory(t)
	m.cse.EXPECT().Get("MODEL").Return("cesm", true).Times(1)

	_, err := f.Find("ERP.f19_g16", m.cse)
	require.Error(t, err)

	m.cse.EXPECT().Get("MODEL").Return("e3sm", true).Times(1)
	driver, err := f.Find("ERP.f19_g16", m.cse)
	require.NoError(t, err)
	assert.NotNil(t, driver)
}

func TestFind_ModifiedTaskCountRequiresNTASKS(t *testing.T) {
	f, m := newFactory(t)

	m.cse.EXPECT().Get("NTASKS").Return("", false).Times(1)
	_, err := f.Find("PEM.f19_g16", m.cse)
	require.Error(t, err)

	m.cse.EXPECT().Get("NTASKS").Return("lots", true).Times(1)
	_, err = f.Find("PEM.f19_g16", m.cse)
	require.Error(t, err)

	m.cse.EXPECT().Get("NTASKS").Return("128", true).Times(1)
	driver, err := f.Find("PEM.f19_g16", m.cse)
	require.NoError(t, err)
	assert.NotNil(t, driver)
}

func TestBuild_SmokeRunsBothPhases(t *testing.T) {
	f, m := newFactory(t)
	driver, err := f.Find("SMS.f19_g16", m.cse)
	require.NoError(t, err)

	m.status.EXPECT().Open("/case").Return(m.rec, nil).Times(1)
	m.rec.EXPECT().Close().Return(nil).Times(1)
	m.expectPhase(domain.PhaseSharedlibBuild, domain.StatusPass, "")
	m.expectPhase(domain.PhaseModelBuild, domain.StatusPass, "")

	m.builder.EXPECT().
		Build(gomock.Any(), m.cse, domain.BuildOptions{SharedlibOnly: true, SaveProvenance: true}).
		Return(true, nil).
		Times(1)
	m.builder.EXPECT().
		Build(gomock.Any(), m.cse, domain.BuildOptions{ModelOnly: true, SaveProvenance: true}).
		Return(true, nil).
		Times(1)

	ok, err := driver.Build(context.Background(), domain.TestBuildOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_RestartPELayoutBuildsModelTwice(t *testing.T) {
	f, m := newFactory(t)
	m.cse.EXPECT().Get("MODEL").Return("e3sm", true).Times(1)
	driver, err := f.Find("ERP.f19_g16", m.cse)
	require.NoError(t, err)

	m.status.EXPECT().Open("/case").Return(m.rec, nil).Times(1)
	m.rec.EXPECT().Close().Return(nil).Times(1)
	m.expectPhase(domain.PhaseModelBuild, domain.StatusPass, "")

	m.builder.EXPECT().
		Build(gomock.Any(), m.cse, domain.BuildOptions{ModelOnly: true, SaveProvenance: true}).
		Return(true, nil).
		Times(2)

	ok, err := driver.Build(context.Background(), domain.TestBuildOptions{ModelOnly: true})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_SharedlibFailureSkipsModelPhase(t *testing.T) {
	f, m := newFactory(t)
	driver, err := f.Find("SMS.f19_g16", m.cse)
	require.NoError(t, err)

	m.status.EXPECT().Open("/case").Return(m.rec, nil).Times(1)
	m.rec.EXPECT().Close().Return(nil).Times(1)
	m.expectPhase(domain.PhaseSharedlibBuild, domain.StatusFail, "build failed")

	m.builder.EXPECT().
		Build(gomock.Any(), m.cse, gomock.Any()).
		Return(false, nil).
		Times(1)

	ok, err := driver.Build(context.Background(), domain.TestBuildOptions{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuild_BuilderErrorRecordsFailAndPropagates(t *testing.T) {
	f, m := newFactory(t)
	driver, err := f.Find("ERS.f19_g16", m.cse)
	require.NoError(t, err)

	buildErr := zerr.New("provenance directory unwritable")
	m.status.EXPECT().Open("/case").Return(m.rec, nil).Times(1)
	m.rec.EXPECT().Close().Return(nil).Times(1)
	m.expectPhase(domain.PhaseSharedlibBuild, domain.StatusFail, "build error")

	m.builder.EXPECT().
		Build(gomock.Any(), m.cse, gomock.Any()).
		Return(false, buildErr).
		Times(1)

	ok, err := driver.Build(context.Background(), domain.TestBuildOptions{})
	assert.ErrorIs(t, err, buildErr)
	assert.False(t, ok)
}

func TestBuild_SharedlibOnlyStopsAfterFirstPhase(t *testing.T) {
	f, m := newFactory(t)
	driver, err := f.Find("SMS.f19_g16", m.cse)
	require.NoError(t, err)

	m.status.EXPECT().Open("/case").Return(m.rec, nil).Times(1)
	m.rec.EXPECT().Close().Return(nil).Times(1)
	m.expectPhase(domain.PhaseSharedlibBuild, domain.StatusPass, "")
	// No MODEL_BUILD entry may appear.

	m.builder.EXPECT().
		Build(gomock.Any(), m.cse, gomock.Any()).
		Return(true, nil).
		Times(1)

	ok, err := driver.Build(context.Background(), domain.TestBuildOptions{SharedlibOnly: true})
	require.NoError(t, err)
	assert.True(t, ok)
}

var _ ports.DriverFactory = (*testdriver.Factory)(nil)
