package preferences

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/openwith/sharext/internal/manifest"
)

// Preference names read by the hook.
const (
	DevelopmentTeam       = "DEVELOPMENT_TEAM"
	ProvisioningProfile   = "PROVISIONING_PROFILE"
	ShareBundleIdentifier = "SHARE_BUNDLE_IDENTIFIER"
	DisplayName           = "DISPLAY_NAME"
	GroupIdentifier       = "GROUP_IDENTIFIER"
	URLScheme             = "IOS_URL_SCHEME"
	UniformTypeIdentifier = "IOS_UNIFORM_TYPE_IDENTIFIER"
)

const (
	defaultUniformTypeID   = "public.image"
	bundleIdentifierSuffix = ".shareextension"
	groupIdentifierPrefix  = "group."
)

// Resolver answers preference lookups for one project. It is built once per
// run from the loaded package metadata and manifest.
type Resolver struct {
	plugin   map[string]string
	manifest string
	widget   manifest.Widget
}

// NewResolver builds a resolver over pluginID's package.json block and the
// config.xml text. Either source may be nil.
func NewResolver(pkg *manifest.Package, cfg *manifest.ConfigXML, pluginID string) *Resolver {
	r := &Resolver{plugin: pkg.PluginVariables(pluginID)}
	if cfg != nil {
		r.manifest = cfg.Raw
		r.widget = cfg.Widget
	}
	return r
}

// Lookup returns the value of name from package metadata, falling back to a
// config.xml <preference>. Empty values count as absent in both sources.
func (r *Resolver) Lookup(name string) (string, bool) {
	if v := r.plugin[name]; v != "" {
		return v, true
	}
	return PreferenceValue(r.manifest, name)
}

// Value is Lookup without the presence flag.
func (r *Resolver) Value(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// PreferenceValue matches name="<name>" value="..." in the manifest text,
// ignoring case. An empty capture counts as absent.
func PreferenceValue(text, name string) (string, bool) {
	re := regexp.MustCompile(`(?i)name="` + regexp.QuoteMeta(name) + `" value="(.*?)"`)
	m := re.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// BundleIdentifier returns SHARE_BUNDLE_IDENTIFIER, or the widget id with the
// share extension suffix when it is not set.
func (r *Resolver) BundleIdentifier() string {
	if v, ok := r.Lookup(ShareBundleIdentifier); ok {
		return v
	}
	if r.widget.ID == "" {
		return ""
	}
	return r.widget.ID + bundleIdentifierSuffix
}

// Preference is one placeholder and its replacement.
type Preference struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Table is an ordered list of substitutions.
type Table []Preference

// Get returns the value for key.
func (t Table) Get(key string) (string, bool) {
	for _, p := range t {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Table builds the placeholder substitutions for the extension files.
func (r *Resolver) Table(projectName string) Table {
	displayName := r.Value(DisplayName)
	if displayName == "" {
		displayName = r.widget.Name
	}
	groupID := r.Value(GroupIdentifier)
	if groupID == "" && r.widget.ID != "" {
		groupID = groupIdentifierPrefix + r.widget.ID
	}
	bundleVersion := r.widget.BundleVersion
	if bundleVersion == "" {
		bundleVersion = r.widget.Version
	}
	uti := r.Value(UniformTypeIdentifier)
	if uti == "" {
		uti = defaultUniformTypeID
	}

	return Table{
		{Key: "__DISPLAY_NAME__", Value: displayName},
		{Key: "__BUNDLE_IDENTIFIER__", Value: r.BundleIdentifier()},
		{Key: "__GROUP_IDENTIFIER__", Value: groupID},
		{Key: "__BUNDLE_SHORT_VERSION_STRING__", Value: ShortVersion(r.widget.Version)},
		{Key: "__BUNDLE_VERSION__", Value: bundleVersion},
		{Key: "__URL_SCHEME__", Value: r.Value(URLScheme)},
		{Key: "__UNIFORM_TYPE_IDENTIFIER__", Value: uti},
		{Key: "__PROJECT_NAME__", Value: projectName},
	}
}

// ShortVersion normalizes a widget version to major.minor.patch, dropping
// prerelease and build metadata. Unparseable versions are returned as is.
func ShortVersion(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
