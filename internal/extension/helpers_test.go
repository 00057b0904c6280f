package extension

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/openwith/sharext/internal/xcodeproj"
	"github.com/openwith/sharext/internal/xcodeproj/xcodeprojtest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// quietLog discards log output.
func quietLog() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func parseFixture(t *testing.T, content string) *xcodeproj.Project {
	t.Helper()
	p, err := xcodeproj.Parse([]byte(content))
	require.NoError(t, err)
	return p
}

// countTargets returns how many native targets are named name.
func countTargets(p *xcodeproj.Project, name string) int {
	n := 0
	for _, target := range p.Targets() {
		if target.Name == name {
			n++
		}
	}
	return n
}

// countGroups returns how many groups are named name.
func countGroups(p *xcodeproj.Project, name string) int {
	n := 0
	for _, id := range p.ObjectsOf("PBXGroup") {
		obj, _ := p.Object(id)
		if obj.Field("name") == name {
			n++
		}
	}
	return n
}

// phaseCount returns how many phases of class isa the target has.
func phaseCount(t *testing.T, p *xcodeproj.Project, targetID, isa string) int {
	t.Helper()
	phases, err := p.Phases(targetID)
	require.NoError(t, err)
	n := 0
	for _, phase := range phases {
		if phase.ISA == isa {
			n++
		}
	}
	return n
}

// groupNames resolves a group's children to file names.
func groupNames(p *xcodeproj.Project, groupKey string) []string {
	var names []string
	for _, child := range p.GroupChildren(groupKey) {
		names = append(names, p.FileName(child))
	}
	return names
}

// phaseNames returns the file names in the target's phase of class isa.
func phaseNames(t *testing.T, p *xcodeproj.Project, targetID, isa string) []string {
	t.Helper()
	phase, err := p.PhaseOf(targetID, isa)
	require.NoError(t, err)
	return p.PhaseFileNames(phase.ID)
}

type cordovaProject struct {
	Root         string
	PbxprojPath  string
	ExtensionDir string
}

const testConfigXML = `<?xml version='1.0' encoding='utf-8'?>
<widget id="io.cordova.hellocordova" version="1.0.0" xmlns="http://www.w3.org/ns/widgets">
    <name>HelloCordova</name>
    <preference name="PROVISIONING_PROFILE" value="profile-uuid" />
</widget>
`

const testPackageJSON = `{
  "name": "io.cordova.hellocordova",
  "devDependencies": { "cordova-ios": "^6.2.0" },
  "cordova": {
    "plugins": {
      "cc.fovea.cordova.openwith": {
        "DEVELOPMENT_TEAM": "TEAM1",
        "SHARE_BUNDLE_IDENTIFIER": "io.cordova.hellocordova.share"
      }
    },
    "platforms": ["ios"]
  }
}
`

// newCordovaProject lays out a prepared Cordova iOS project with the given
// extension files (name to content).
func newCordovaProject(t *testing.T, pbxproj string, files map[string]string) *cordovaProject {
	t.Helper()
	root := t.TempDir()
	ios := filepath.Join(root, "platforms", "ios")
	extDir := filepath.Join(ios, FolderName)
	require.NoError(t, os.MkdirAll(extDir, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(root, "config.xml"), []byte(testConfigXML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(testPackageJSON), 0644))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(extDir, name), []byte(content), 0644))
	}

	return &cordovaProject{
		Root:         root,
		PbxprojPath:  xcodeprojtest.Write(t, ios, xcodeprojtest.MainTarget, pbxproj),
		ExtensionDir: extDir,
	}
}
