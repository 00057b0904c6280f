package extension

import (
	"strings"

	"github.com/openwith/sharext/internal/logging"
	"github.com/openwith/sharext/internal/xcodeproj"
	"github.com/sirupsen/logrus"
)

const (
	// EntitlementsPath is the extension's entitlements file relative to
	// the iOS platform directory.
	EntitlementsPath = FolderName + "/" + FolderName + ".entitlements"
	// DistributionIdentity is the identity forced for release builds.
	DistributionIdentity = "iPhone Distribution"
)

// Code signing styles.
const (
	StyleAutomatic = "Automatic"
	StyleManual    = "Manual"
)

// MatchesExtension reports whether a configuration's PRODUCT_NAME belongs to
// the extension target: the name contains the target name.
func MatchesExtension(productName, targetName string) bool {
	return strings.Contains(xcodeproj.Unquote(productName), targetName)
}

// extensionConfigurations returns the configurations whose PRODUCT_NAME
// matches the extension target.
func extensionConfigurations(p *xcodeproj.Project) []*xcodeproj.BuildConfiguration {
	var matched []*xcodeproj.BuildConfiguration
	for _, cfg := range p.BuildConfigurations() {
		name, ok := cfg.Settings.Get(xcodeproj.ProductName)
		if ok && MatchesExtension(name, TargetName) {
			matched = append(matched, cfg)
		}
	}
	return matched
}

// PatchEntitlements points CODE_SIGN_ENTITLEMENTS of every extension
// configuration at the extension's entitlements file. It returns the number
// of configurations changed; zero matches is not an error.
func PatchEntitlements(p *xcodeproj.Project) int {
	configs := extensionConfigurations(p)
	for _, cfg := range configs {
		cfg.Settings.Set(xcodeproj.CodeSignEntitlements, EntitlementsPath)
	}
	return len(configs)
}

// Signing holds the resolved signing values for the extension.
type Signing struct {
	DevelopmentTeam     string `yaml:"development_team"`
	ProvisioningProfile string `yaml:"provisioning_profile"`
	BundleIdentifier    string `yaml:"bundle_identifier"`
}

// SigningPolicy is how a build mode signs the extension.
type SigningPolicy struct {
	Style string
	// Identity, when set, overrides CODE_SIGN_IDENTITY.
	Identity string
	// SetProfile writes PROVISIONING_PROFILE.
	SetProfile bool
}

// SigningPolicyFor returns the policy of a build mode. Debug builds let Xcode
// pick the identity and profile; release builds sign manually with the
// distribution identity and the configured profile.
func SigningPolicyFor(debug bool) SigningPolicy {
	if debug {
		return SigningPolicy{Style: StyleAutomatic}
	}
	return SigningPolicy{
		Style:      StyleManual,
		Identity:   DistributionIdentity,
		SetProfile: true,
	}
}

// Apply writes the policy and signing values into one configuration.
func (sp SigningPolicy) Apply(s xcodeproj.BuildSettings, sg Signing) {
	if sp.SetProfile {
		s.Set(xcodeproj.ProvisioningProfile, sg.ProvisioningProfile)
	}
	s.Set(xcodeproj.DevelopmentTeam, sg.DevelopmentTeam)
	s.Set(xcodeproj.ProductBundleIdentifier, sg.BundleIdentifier)
	if sp.Identity != "" {
		s.Set(xcodeproj.CodeSignIdentity, sp.Identity)
	}
	s.Set(xcodeproj.CodeSignStyle, sp.Style)
}

// PatchSigning applies policy to every extension configuration. Nothing is
// changed when no development team is configured. It returns the number of
// configurations changed.
func PatchSigning(p *xcodeproj.Project, sg Signing, policy SigningPolicy, red logging.Redactor, log logrus.FieldLogger) int {
	if sg.DevelopmentTeam == "" {
		return 0
	}
	configs := extensionConfigurations(p)
	for _, cfg := range configs {
		policy.Apply(cfg.Settings, sg)

		identity, _ := cfg.Settings.Get(xcodeproj.CodeSignIdentity)
		log.WithFields(logrus.Fields{
			"configuration":             cfg.Name,
			"DEVELOPMENT_TEAM":          red.Value("DEVELOPMENT_TEAM", sg.DevelopmentTeam),
			"CODE_SIGN_IDENTITY":        red.Value("CODE_SIGN_IDENTITY", identity),
			"CODE_SIGN_STYLE":           policy.Style,
			"PRODUCT_BUNDLE_IDENTIFIER": sg.BundleIdentifier,
		}).Info("Added signing identities for extension")
		if red.Reveal {
			log.Debugf("[%s] build settings: %s", FolderName, cfg.Settings)
		}
	}
	return len(configs)
}
