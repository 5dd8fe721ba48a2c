package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casebuild/internal/core/domain"
)

func TestUniverses(t *testing.T) {
	assert.Len(t, domain.Components(), 10)
	assert.Len(t, domain.SharedLibs(), 4)
	assert.Len(t, domain.AllObjects(), 14)
	assert.Len(t, domain.DependsObjects(), 11)

	// csmshare belongs to the depends universe alongside the components.
	assert.Contains(t, domain.DependsObjects(), domain.TargetCSMShare)
	assert.NotContains(t, domain.DependsObjects(), domain.TargetPIO)
}

func TestSharedLibBuildOrder(t *testing.T) {
	libs := domain.SharedLibs()
	require.Len(t, libs, 4)
	// csmshare links the others, so it must come last.
	assert.Equal(t, domain.TargetCSMShare, libs[3])
	assert.Equal(t, domain.TargetGPTL, libs[0])
}

func TestTargetKinds(t *testing.T) {
	assert.True(t, domain.TargetATM.IsComponent())
	assert.False(t, domain.TargetATM.IsSharedLib())
	assert.True(t, domain.TargetPIO.IsSharedLib())
	assert.False(t, domain.TargetPIO.IsComponent())
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		universe []domain.Target
		want     domain.Target
		wantErr  bool
	}{
		{name: "component in full universe", raw: "atm", universe: domain.AllObjects(), want: domain.TargetATM},
		{name: "sharedlib in full universe", raw: "pio", universe: domain.AllObjects(), want: domain.TargetPIO},
		{name: "sharedlib outside component universe", raw: "pio", universe: domain.Components(), wantErr: true},
		{name: "csmshare in depends universe", raw: "csmshare", universe: domain.DependsObjects(), want: domain.TargetCSMShare},
		{name: "unknown identifier", raw: "kelp", universe: domain.AllObjects(), wantErr: true},
		{name: "empty identifier", raw: "", universe: domain.AllObjects(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTarget(tt.raw, tt.universe)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnknownTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
