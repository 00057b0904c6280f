package xcodeproj

import (
	"fmt"
	"sort"
	"strings"
)

// SettingKey names a build setting this package edits. Settings not listed
// here are still preserved; they are just never written.
type SettingKey string

const (
	ProductName             SettingKey = "PRODUCT_NAME"
	ProductBundleIdentifier SettingKey = "PRODUCT_BUNDLE_IDENTIFIER"
	CodeSignEntitlements    SettingKey = "CODE_SIGN_ENTITLEMENTS"
	CodeSignIdentity        SettingKey = "CODE_SIGN_IDENTITY"
	CodeSignStyle           SettingKey = "CODE_SIGN_STYLE"
	DevelopmentTeam         SettingKey = "DEVELOPMENT_TEAM"
	ProvisioningProfile     SettingKey = "PROVISIONING_PROFILE"
	InfoPlistFile           SettingKey = "INFOPLIST_FILE"
)

// BuildSettings is a view over one configuration's buildSettings dictionary.
type BuildSettings struct {
	raw map[string]any
}

// Get returns a scalar setting. List-valued settings report ok=false.
func (s BuildSettings) Get(key SettingKey) (string, bool) {
	v, ok := s.raw[string(key)].(string)
	return v, ok
}

// Set assigns a scalar setting.
func (s BuildSettings) Set(key SettingKey, value string) {
	s.raw[string(key)] = value
}

// Has reports whether the setting is present with any value.
func (s BuildSettings) Has(key SettingKey) bool {
	_, ok := s.raw[string(key)]
	return ok
}

// String renders the settings as sorted key=value pairs for logging.
func (s BuildSettings) String() string {
	keys := make([]string, 0, len(s.raw))
	for k := range s.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, s.raw[k]))
	}
	return strings.Join(parts, " ")
}

// BuildConfiguration is an XCBuildConfiguration that carries buildSettings.
type BuildConfiguration struct {
	ID       string
	Name     string
	Settings BuildSettings
}

// BuildConfigurations returns every configuration with a buildSettings
// dictionary, ordered by id. Project-level and target-level configurations
// are both included.
func (p *Project) BuildConfigurations() []*BuildConfiguration {
	var configs []*BuildConfiguration
	for _, id := range p.ObjectsOf("XCBuildConfiguration") {
		obj, _ := p.Object(id)
		raw, ok := obj["buildSettings"].(map[string]any)
		if !ok {
			continue
		}
		configs = append(configs, &BuildConfiguration{
			ID:       id,
			Name:     obj.Field("name"),
			Settings: BuildSettings{raw: raw},
		})
	}
	return configs
}
