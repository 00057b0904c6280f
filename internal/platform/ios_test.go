package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openwith/sharext/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(p, 0755))
	}
}

func TestIOS(t *testing.T) {
	root := t.TempDir()
	ios := IOSDir(root)
	mkdirs(t, filepath.Join(ios, "Zeta.xcodeproj"), filepath.Join(ios, "HelloCordova.xcodeproj"), filepath.Join(ios, "ShareExtension"))
	require.NoError(t, os.WriteFile(filepath.Join(ios, "Fake.xcodeproj"), nil, 0644))

	p, err := IOS(root)
	require.NoError(t, err)
	assert.Equal(t, "HelloCordova", p.ProjectName)
	assert.Equal(t, filepath.Join(ios, "HelloCordova.xcodeproj", "project.pbxproj"), p.PbxprojPath())
	assert.Equal(t, filepath.Join(ios, "ShareExtension"), p.ExtensionDir("ShareExtension"))
}

func TestIOS_Missing(t *testing.T) {
	_, err := IOS(t.TempDir())
	assert.Error(t, err)

	root := t.TempDir()
	mkdirs(t, IOSDir(root))
	_, err = IOS(root)
	assert.True(t, errors.Is(err, ErrNoXcodeProject))
}

func TestCheckCordovaIOS(t *testing.T) {
	tests := []struct {
		rng     string
		want    bool
		wantErr bool
	}{
		{"^6.2.0", true, false},
		{"~5.1.1", true, false},
		{"4.5.5", false, false},
		{">=7.0.0", true, false},
		{"github:apache/cordova-ios", false, true},
	}
	for _, tt := range tests {
		got, err := CheckCordovaIOS(tt.rng)
		if tt.wantErr {
			assert.Error(t, err, tt.rng)
			continue
		}
		require.NoError(t, err, tt.rng)
		assert.Equal(t, tt.want, got, tt.rng)
	}
}

func TestCordovaIOSVersion(t *testing.T) {
	_, ok := CordovaIOSVersion(nil)
	assert.False(t, ok)

	pkg := &manifest.Package{DevDependencies: map[string]string{"cordova-ios": "^6.2.0"}}
	v, ok := CordovaIOSVersion(pkg)
	assert.True(t, ok)
	assert.Equal(t, "^6.2.0", v)
}
