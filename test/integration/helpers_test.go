//go:build integration

package integration_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openwith/sharext/internal/xcodeproj/xcodeprojtest"
	"github.com/sirupsen/logrus"
)

// testEnv holds paths to an isolated Cordova project.
type testEnv struct {
	HomeDir      string // HOME, holds ~/.sharext
	ProjectDir   string // Cordova project root
	IOSDir       string // platforms/ios
	ExtensionDir string // platforms/ios/ShareExtension
	PbxprojPath  string // platforms/ios/HelloCordova.xcodeproj/project.pbxproj
}

// setupTestEnv creates a prepared Cordova iOS project in a temp directory and
// points HOME at another one so the user config file is sandboxed.
func setupTestEnv(t *testing.T, configXML, packageJSON string) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)

	env.IOSDir = filepath.Join(env.ProjectDir, "platforms", "ios")
	env.ExtensionDir = filepath.Join(env.IOSDir, "ShareExtension")

	writeFile(t, filepath.Join(env.ProjectDir, "config.xml"), configXML)
	writeFile(t, filepath.Join(env.ProjectDir, "package.json"), packageJSON)
	if err := os.MkdirAll(env.ExtensionDir, 0755); err != nil {
		t.Fatalf("creating %s: %v", env.ExtensionDir, err)
	}
	env.PbxprojPath = xcodeprojtest.Write(t, env.IOSDir, xcodeprojtest.MainTarget, xcodeprojtest.Cordova)

	return env
}

// setupShareExtension writes the extension sources the plugin ships.
func setupShareExtension(t *testing.T, env *testEnv) {
	t.Helper()

	writeFile(t, filepath.Join(env.ExtensionDir, "ShareViewController.h"), `#import <UIKit/UIKit.h>
#define SHAREEXT_GROUP_IDENTIFIER @"__GROUP_IDENTIFIER__"
#define SHAREEXT_URL_SCHEME @"__URL_SCHEME__"
#define SHAREEXT_UNIFORM_TYPE_IDENTIFIER @"__UNIFORM_TYPE_IDENTIFIER__"

@interface ShareViewController : UIViewController
@end
`)
	writeFile(t, filepath.Join(env.ExtensionDir, "ShareExtension-Info.plist"), `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleDisplayName</key>
	<string>__DISPLAY_NAME__</string>
	<key>CFBundleIdentifier</key>
	<string>__BUNDLE_IDENTIFIER__</string>
	<key>CFBundleShortVersionString</key>
	<string>__BUNDLE_SHORT_VERSION_STRING__</string>
	<key>CFBundleVersion</key>
	<string>__BUNDLE_VERSION__</string>
</dict>
</plist>
`)
	writeFile(t, filepath.Join(env.ExtensionDir, "ShareExtension.entitlements"), `<dict>
	<key>com.apple.security.application-groups</key>
	<array><string>__GROUP_IDENTIFIER__</string></array>
</dict>
`)
	writeFile(t, filepath.Join(env.ExtensionDir, "icon.png"), "\x89PNG\r\n")
	writeFile(t, filepath.Join(env.ExtensionDir, ".DS_Store"), "")
}

// quietLogger returns a logger that discards output.
func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns a file's contents or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s unexpectedly contains %q", path, substr)
	}
}
