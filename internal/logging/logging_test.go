package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("target", "ShareExt").Info("adding target")
	assert.Contains(t, buf.String(), "adding target")
	assert.Contains(t, buf.String(), "target=ShareExt")

	_, err = New(&buf, "loud")
	assert.Error(t, err)
}

func TestRedactor_Value(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"DEVELOPMENT_TEAM", "ABCDE12345", "ABCD***"},
		{"PROVISIONING_PROFILE", "abc", "***"},
		{"CODE_SIGN_IDENTITY", "iPhone Distribution", "iPho***"},
		{"PRODUCT_BUNDLE_IDENTIFIER", "io.cordova.x", "io.cordova.x"},
		{"DEVELOPMENT_TEAM", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Redactor{}.Value(tt.key, tt.value), tt.key)
	}
	assert.Equal(t, "ABCDE12345", Redactor{Reveal: true}.Value("DEVELOPMENT_TEAM", "ABCDE12345"))
}
