package manifest

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
)

// ConfigXMLFile is the manifest file name at the project root.
const ConfigXMLFile = "config.xml"

// Widget holds the <widget> attributes the hook reads.
type Widget struct {
	XMLName       xml.Name `xml:"widget"`
	ID            string   `xml:"id,attr"`
	Version       string   `xml:"version,attr"`
	BundleVersion string   `xml:"ios-CFBundleVersion,attr"`
	Name          string   `xml:"name"`
}

// ConfigXML is a loaded config.xml.
type ConfigXML struct {
	// Raw is the file text starting at the first '<'.
	Raw    string
	Widget Widget
}

// ReadConfigXML reads <root>/config.xml.
func ReadConfigXML(root string) (*ConfigXML, error) {
	path := filepath.Join(root, ConfigXMLFile)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfigXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfigXML strips any bytes before the first '<' (BOMs, stray output
// from other hooks) and decodes the widget header.
func ParseConfigXML(data []byte) (*ConfigXML, error) {
	raw := string(data)
	if i := strings.Index(raw, "<"); i > 0 {
		raw = raw[i:]
	}

	cfg := &ConfigXML{Raw: raw}
	if err := xml.Unmarshal([]byte(raw), &cfg.Widget); err != nil {
		return nil, fmt.Errorf("decoding widget: %w", err)
	}
	cfg.Widget.Name = strings.TrimSpace(cfg.Widget.Name)
	return cfg, nil
}
