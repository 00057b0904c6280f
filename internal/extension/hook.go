package extension

import (
	"fmt"

	"github.com/openwith/sharext/internal/branding"
	"github.com/openwith/sharext/internal/logging"
	"github.com/openwith/sharext/internal/manifest"
	"github.com/openwith/sharext/internal/platform"
	"github.com/openwith/sharext/internal/preferences"
	"github.com/openwith/sharext/internal/xcodeproj"
	"github.com/sirupsen/logrus"
)

// BuildContext is what the build orchestrator hands to the hook.
type BuildContext struct {
	ProjectRoot string
	Debug       bool
	// Project, when set, is used instead of parsing project.pbxproj.
	Project *xcodeproj.Project
	// ShowSecrets disables redaction of signing values in logs.
	ShowSecrets bool
}

// Report summarizes a successful run.
type Report struct {
	ProjectPath         string  `yaml:"project_path"`
	ProjectName         string  `yaml:"project_name"`
	Debug               bool    `yaml:"debug"`
	TargetCreated       bool    `yaml:"target_created"`
	GroupCreated        bool    `yaml:"group_created"`
	GroupParented       bool    `yaml:"group_parented"`
	SourceFiles         int     `yaml:"source_files"`
	ConfigFiles         int     `yaml:"config_files"`
	ResourceFiles       int     `yaml:"resource_files"`
	EntitlementsPatched int     `yaml:"entitlements_patched"`
	SigningPatched      int     `yaml:"signing_patched"`
	Signing             Signing `yaml:"signing"`
}

// Inputs are the loaded project files a run works from.
type Inputs struct {
	Package   *manifest.Package
	ConfigXML *manifest.ConfigXML
	Platform  *platform.IOSPlatform
	Resolver  *preferences.Resolver
}

// LoadInputs reads package.json, config.xml and locates the Xcode project.
// Any missing or unparseable file is an error.
func LoadInputs(root string) (*Inputs, error) {
	pkg, err := manifest.ReadPackage(root)
	if err != nil {
		return nil, err
	}
	cfg, err := manifest.ReadConfigXML(root)
	if err != nil {
		return nil, err
	}
	ios, err := platform.IOS(root)
	if err != nil {
		return nil, err
	}
	return &Inputs{
		Package:   pkg,
		ConfigXML: cfg,
		Platform:  ios,
		Resolver:  preferences.NewResolver(pkg, cfg, branding.PluginID()),
	}, nil
}

// ResolveSigning reads the signing preferences. The bundle identifier falls
// back to the one derived from the widget id.
func (in *Inputs) ResolveSigning() Signing {
	return Signing{
		DevelopmentTeam:     in.Resolver.Value(preferences.DevelopmentTeam),
		ProvisioningProfile: in.Resolver.Value(preferences.ProvisioningProfile),
		BundleIdentifier:    in.Resolver.BundleIdentifier(),
	}
}

// Run adds the share extension to the project under bc.ProjectRoot. The
// project file is written once, after every step succeeded; on error the
// file on disk is left untouched. Substituted extension files are not
// restored on error.
func Run(bc BuildContext, log logrus.FieldLogger) (*Report, error) {
	log.Infof("Adding %s target to XCode project", TargetName)

	in, err := LoadInputs(bc.ProjectRoot)
	if err != nil {
		return nil, err
	}

	pbxPath := in.Platform.PbxprojPath()
	project := bc.Project
	if project == nil {
		log.Infof("Parsing existing project at location: %s", pbxPath)
		project, err = xcodeproj.Open(pbxPath)
		if err != nil {
			return nil, err
		}
	}

	files, err := Discover(in.Platform.ExtensionDir(FolderName))
	if err != nil {
		return nil, err
	}
	table := in.Resolver.Table(in.Platform.ProjectName)
	for _, f := range files.Substitutable() {
		if err := preferences.ReplaceInFile(f.Path, table); err != nil {
			return nil, fmt.Errorf("substituting preferences: %w", err)
		}
	}

	res, err := Upsert(project, files, log)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ProjectPath:   pbxPath,
		ProjectName:   in.Platform.ProjectName,
		Debug:         bc.Debug,
		TargetCreated: res.TargetCreated,
		GroupCreated:  res.GroupCreated,
		GroupParented: res.Parented,
		SourceFiles:   len(files.Source),
		ConfigFiles:   len(files.Config),
		ResourceFiles: len(files.Resource),
	}

	report.EntitlementsPatched = PatchEntitlements(project)

	red := logging.Redactor{Reveal: bc.ShowSecrets}
	report.Signing = in.ResolveSigning()
	log.Infof("Adding team %s and provisioning profile %s",
		red.Value("DEVELOPMENT_TEAM", report.Signing.DevelopmentTeam),
		red.Value("PROVISIONING_PROFILE", report.Signing.ProvisioningProfile))
	report.SigningPatched = PatchSigning(project, report.Signing, SigningPolicyFor(bc.Debug), red, log)

	if err := project.WriteFile(pbxPath); err != nil {
		return nil, err
	}
	log.Infof("Successfully added %s target to XCode project: debug=%t", TargetName, bc.Debug)
	return report, nil
}
