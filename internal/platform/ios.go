package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/openwith/sharext/internal/manifest"
)

const (
	platformsDir    = "platforms"
	iosDir          = "ios"
	xcodeProjectExt = ".xcodeproj"
	pbxprojFile     = "project.pbxproj"

	// CordovaIOSPackage is the npm package of the iOS platform.
	CordovaIOSPackage = "cordova-ios"
	// SupportedCordovaIOS is the platform range whose project layout the
	// hook understands.
	SupportedCordovaIOS = ">= 5.0.0"
)

// ErrNoXcodeProject is returned when platforms/ios has no .xcodeproj.
var ErrNoXcodeProject = errors.New("no .xcodeproj found")

// IOSPlatform describes a prepared Cordova iOS platform.
type IOSPlatform struct {
	Dir             string // <root>/platforms/ios
	XcodeProjectDir string // <Dir>/<ProjectName>.xcodeproj
	ProjectName     string
}

// IOSDir returns <root>/platforms/ios.
func IOSDir(root string) string {
	return filepath.Join(root, platformsDir, iosDir)
}

// IOS locates the Xcode project inside the iOS platform of root. When several
// projects exist the first one in name order wins.
func IOS(root string) (*IOSPlatform, error) {
	dir := IOSDir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading iOS platform %s: %w", dir, err)
	}

	var projects []string
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), xcodeProjectExt) {
			projects = append(projects, e.Name())
		}
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoXcodeProject)
	}
	sort.Strings(projects)

	return &IOSPlatform{
		Dir:             dir,
		XcodeProjectDir: filepath.Join(dir, projects[0]),
		ProjectName:     strings.TrimSuffix(projects[0], xcodeProjectExt),
	}, nil
}

// PbxprojPath returns the path of project.pbxproj.
func (p *IOSPlatform) PbxprojPath() string {
	return filepath.Join(p.XcodeProjectDir, pbxprojFile)
}

// ExtensionDir returns the directory holding an extension's files.
func (p *IOSPlatform) ExtensionDir(name string) string {
	return filepath.Join(p.Dir, name)
}

// CordovaIOSVersion returns the cordova-ios range declared in package.json.
func CordovaIOSVersion(pkg *manifest.Package) (string, bool) {
	if pkg == nil {
		return "", false
	}
	return pkg.Dependency(CordovaIOSPackage)
}

// CheckCordovaIOS reports whether the lowest version allowed by rng (an npm
// range such as "^6.2.0" or "~5.1.1") satisfies SupportedCordovaIOS.
func CheckCordovaIOS(rng string) (bool, error) {
	constraint, err := semver.NewConstraint(SupportedCordovaIOS)
	if err != nil {
		return false, fmt.Errorf("parsing constraint: %w", err)
	}
	base := strings.TrimLeft(strings.TrimSpace(rng), "^~>=v ")
	v, err := semver.NewVersion(base)
	if err != nil {
		return false, fmt.Errorf("parsing %s version %q: %w", CordovaIOSPackage, rng, err)
	}
	return constraint.Check(v), nil
}
