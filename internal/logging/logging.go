// Package logging builds the logrus logger used by the hook and redacts
// signing values before they reach the build log.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the named level.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	return logger, nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TEAM", "PROFILE", "IDENTITY", "TOKEN", "SECRET", "PASSWORD"}

// Redactor masks sensitive values unless Reveal is set.
type Redactor struct {
	Reveal bool
}

// Value returns a redacted version of value if key contains a sensitive
// pattern (case-insensitive). Values with 4+ chars keep their first 4 chars.
func (r Redactor) Value(key, value string) string {
	if r.Reveal || value == "" {
		return value
	}
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
