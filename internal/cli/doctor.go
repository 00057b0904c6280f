package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/openwith/sharext/internal/branding"
	"github.com/openwith/sharext/internal/extension"
	"github.com/openwith/sharext/internal/manifest"
	"github.com/openwith/sharext/internal/platform"
	"github.com/openwith/sharext/internal/preferences"
	"github.com/openwith/sharext/internal/xcodeproj"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:         "doctor [project-root]",
	Annotations: map[string]string{projectArgAnnotation: "true"},
	Short:       "Check that a Cordova project is ready for add-target",
	Long: `Run diagnostic checks on a Cordova project: config.xml, package.json and its
plugin variables, the iOS platform and Xcode project, the cordova-ios version
and the ShareExtension source directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveProjectRoot(args)
		if err != nil {
			return err
		}
		d := &doctor{w: cmd.OutOrStdout()}
		d.run(root)
		if d.failures > 0 {
			return fmt.Errorf("%d check(s) failed", d.failures)
		}
		return nil
	},
}

var (
	okTag   = color.New(color.FgGreen).Sprint("[ OK ]")
	warnTag = color.New(color.FgYellow).Sprint("[WARN]")
	failTag = color.New(color.FgRed).Sprint("[FAIL]")
	infoTag = "[INFO]"
)

// doctor prints one line per check and counts failures.
type doctor struct {
	w        io.Writer
	failures int
}

func (d *doctor) ok(format string, a ...any) { d.line(okTag, format, a...) }
func (d *doctor) warn(format string, a ...any) { d.line(warnTag, format, a...) }
func (d *doctor) info(format string, a ...any) { d.line(infoTag, format, a...) }

func (d *doctor) fail(format string, a ...any) {
	d.failures++
	d.line(failTag, format, a...)
}

func (d *doctor) line(tag, format string, a ...any) {
	fmt.Fprintf(d.w, "  %s %s\n", tag, fmt.Sprintf(format, a...))
}

func (d *doctor) run(root string) {
	d.checkTools()
	fmt.Fprintf(d.w, "Project: %s\n", root)

	cfg := d.checkConfigXML(root)
	pkg := d.checkPackage(root)
	if pkg != nil || cfg != nil {
		d.checkPreferences(pkg, cfg)
	}
	if pkg != nil {
		d.checkCordovaIOS(pkg)
	}

	ios, err := platform.IOS(root)
	if err != nil {
		d.fail("iOS platform: %v", err)
		return
	}
	d.ok("Xcode project: %s", filepath.Base(ios.XcodeProjectDir))
	d.checkExtensionDir(ios)
	d.checkProject(ios)
}

// checkTools looks for the build tools. They are only needed to build the
// app, so a missing tool is a warning.
func (d *doctor) checkTools() {
	fmt.Fprintln(d.w, "Tools:")
	for _, name := range []string{"node", "cordova", "xcodebuild"} {
		path, err := exec.LookPath(name)
		if err != nil {
			d.warn("%s not found", name)
			continue
		}
		d.ok("%s found at %s", name, path)
	}
}

func (d *doctor) checkConfigXML(root string) *manifest.ConfigXML {
	cfg, err := manifest.ReadConfigXML(root)
	if err != nil {
		d.fail("%s: %v", manifest.ConfigXMLFile, err)
		return nil
	}
	d.ok("%s: widget %s (v%s)", manifest.ConfigXMLFile, cfg.Widget.ID, cfg.Widget.Version)
	return cfg
}

func (d *doctor) checkPackage(root string) *manifest.Package {
	path := filepath.Join(root, manifest.PackageJSONFile)
	result, err := manifest.ValidateFile(path)
	if err != nil {
		d.fail("%s: %v", manifest.PackageJSONFile, err)
		return nil
	}
	if !result.Valid {
		d.fail("%s: %d validation issue(s):", manifest.PackageJSONFile, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(d.w, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(d.w, "    - %s\n", issue.Message)
			}
		}
		return nil
	}

	pkg, err := manifest.ReadPackage(root)
	if err != nil {
		d.fail("%s: %v", manifest.PackageJSONFile, err)
		return nil
	}
	d.ok("%s is valid", manifest.PackageJSONFile)
	return pkg
}

func (d *doctor) checkPreferences(pkg *manifest.Package, cfg *manifest.ConfigXML) {
	pluginID := branding.PluginID()
	if len(pkg.PluginVariables(pluginID)) == 0 {
		d.info("no %s variables in %s, using config.xml preferences", pluginID, manifest.PackageJSONFile)
	}

	r := preferences.NewResolver(pkg, cfg, pluginID)
	if _, ok := r.Lookup(preferences.DevelopmentTeam); ok {
		d.ok("%s is set", preferences.DevelopmentTeam)
	} else {
		d.warn("%s is not set, signing settings will not be patched", preferences.DevelopmentTeam)
	}
	if _, ok := r.Lookup(preferences.ProvisioningProfile); !ok {
		d.warn("%s is not set, release builds get an empty profile", preferences.ProvisioningProfile)
	}
	if _, ok := r.Lookup(preferences.ShareBundleIdentifier); !ok {
		if id := r.BundleIdentifier(); id != "" {
			d.info("%s is not set, using %s", preferences.ShareBundleIdentifier, id)
		} else {
			d.warn("%s is not set and config.xml has no widget id", preferences.ShareBundleIdentifier)
		}
	}
}

func (d *doctor) checkCordovaIOS(pkg *manifest.Package) {
	rng, ok := platform.CordovaIOSVersion(pkg)
	if !ok {
		d.warn("%s is not a dependency", platform.CordovaIOSPackage)
		return
	}
	supported, err := platform.CheckCordovaIOS(rng)
	switch {
	case err != nil:
		d.warn("%v", err)
	case supported:
		d.ok("%s %s", platform.CordovaIOSPackage, rng)
	default:
		d.fail("%s %s does not satisfy %s", platform.CordovaIOSPackage, rng, platform.SupportedCordovaIOS)
	}
}

func (d *doctor) checkExtensionDir(ios *platform.IOSPlatform) {
	files, err := extension.Discover(ios.ExtensionDir(extension.FolderName))
	if err != nil {
		d.fail("%s: %v", extension.FolderName, err)
		return
	}
	if files.Len() == 0 {
		d.warn("%s is empty", extension.FolderName)
		return
	}
	d.ok("%s: %d source, %d config, %d resource file(s)",
		extension.FolderName, len(files.Source), len(files.Config), len(files.Resource))
}

func (d *doctor) checkProject(ios *platform.IOSPlatform) {
	p, err := xcodeproj.Open(ios.PbxprojPath())
	if err != nil {
		d.fail("project.pbxproj: %v", err)
		return
	}
	target, ok := extension.FindTarget(p)
	if !ok {
		d.info("%s target not added yet", extension.TargetName)
		return
	}
	d.info("%s target present, files will be registered again on the next run", extension.TargetName)
	for _, isa := range []string{xcodeproj.SourcesBuildPhase, xcodeproj.ResourcesBuildPhase} {
		if _, err := p.PhaseOf(target.ID, isa); errors.Is(err, xcodeproj.ErrPhaseNotFound) {
			d.fail("%s target has no %s", extension.TargetName, isa)
		}
	}
}
