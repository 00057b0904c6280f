package xcodeproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSettings_GetSet(t *testing.T) {
	p := parseFixture(t)

	var debug *BuildConfiguration
	for _, cfg := range p.BuildConfigurations() {
		if cfg.ID == "1D6058940D05DD3E006BFB54" {
			debug = cfg
		}
	}
	require.NotNil(t, debug)
	assert.Equal(t, "Debug", debug.Name)

	name, ok := debug.Settings.Get(ProductName)
	require.True(t, ok)
	assert.Equal(t, "HelloCordova", name)

	_, ok = debug.Settings.Get(DevelopmentTeam)
	assert.False(t, ok)

	debug.Settings.Set(DevelopmentTeam, "TEAM1")
	assert.True(t, debug.Settings.Has(DevelopmentTeam))

	// Edits are visible through a fresh view and unknown keys are kept.
	for _, cfg := range p.BuildConfigurations() {
		if cfg.ID == debug.ID {
			team, _ := cfg.Settings.Get(DevelopmentTeam)
			assert.Equal(t, "TEAM1", team)
			assert.True(t, cfg.Settings.Has(SettingKey("ALWAYS_SEARCH_USER_PATHS")))
		}
	}
	assert.Contains(t, debug.Settings.String(), "DEVELOPMENT_TEAM=TEAM1")
}

func TestBuildSettings_ListValue(t *testing.T) {
	p := parseFixture(t)
	_, err := p.AddTarget("ShareExt", KindAppExtension, "ShareExtension")
	require.NoError(t, err)

	for _, cfg := range p.BuildConfigurations() {
		if cfg.Name == "Debug" && cfg.Settings.Has(SettingKey("GCC_PREPROCESSOR_DEFINITIONS")) {
			_, ok := cfg.Settings.Get(SettingKey("GCC_PREPROCESSOR_DEFINITIONS"))
			assert.False(t, ok)
		}
	}
}
