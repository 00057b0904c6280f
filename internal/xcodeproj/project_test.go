package xcodeproj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openwith/sharext/internal/xcodeproj/xcodeprojtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T) *Project {
	t.Helper()
	p, err := Parse([]byte(xcodeprojtest.Cordova))
	require.NoError(t, err)
	return p
}

func TestParse_Cordova(t *testing.T) {
	p := parseFixture(t)

	assert.Equal(t, "29B97313FDCFA39411CA2CEA", p.RootObjectID())
	targets := p.Targets()
	require.Len(t, targets, 1)
	assert.Equal(t, xcodeprojtest.MainTarget, targets[0].Name)
	assert.Equal(t, "com.apple.product-type.application", targets[0].ProductType())
	assert.Len(t, p.BuildConfigurations(), 4)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("{ objects = { }; rootObject = ABC; }"))
	assert.Error(t, err, "rootObject must reference a PBXProject")

	_, err = Parse([]byte("{ archiveVersion = 1; }"))
	assert.Error(t, err, "objects dictionary is required")

	_, err = Parse([]byte("{ objects = "))
	assert.Error(t, err)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "project.pbxproj"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading project file")
}

func TestMarshal_RoundTrip(t *testing.T) {
	p := parseFixture(t)
	target, err := p.AddTarget("ShareExt", KindAppExtension, "ShareExtension")
	require.NoError(t, err)

	data, err := p.Marshal()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// !$*UTF8*$!\n"))

	reparsed, err := Parse(data)
	require.NoError(t, err)
	got, ok := reparsed.TargetByName("ShareExt")
	require.True(t, ok)
	assert.Equal(t, target.ID, got.ID)
	assert.Len(t, reparsed.Targets(), 2)
}

func TestSave_WritesOpenedPath(t *testing.T) {
	path := xcodeprojtest.Write(t, t.TempDir(), "HelloCordova", xcodeprojtest.Cordova)
	p, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Path())

	key := p.CreateGroup("Extra", "Extra")
	require.NoError(t, p.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	_, ok := reopened.Object(key)
	assert.True(t, ok)
}

func TestSave_WithoutPath(t *testing.T) {
	p := parseFixture(t)
	assert.Error(t, p.Save())

	out := filepath.Join(t.TempDir(), "out.pbxproj")
	require.NoError(t, p.WriteFile(out))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestNewID_Unique(t *testing.T) {
	p := parseFixture(t)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := p.add(Object{"isa": "PBXGroup"})
		assert.Len(t, id, 24)
		assert.Equal(t, strings.ToUpper(id), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"ShareExt"`, "ShareExt"},
		{"ShareExt", "ShareExt"},
		{`"`, `"`},
		{`""`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Unquote(tt.in), "Unquote(%q)", tt.in)
	}
}
