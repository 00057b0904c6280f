package xcodeproj

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/openwith/sharext/internal/platform"
	"howett.net/plist"
)

// header is the encoding marker Xcode expects on the first line.
const header = "// !$*UTF8*$!\n"

var (
	// ErrNotFound is returned when a referenced object does not exist.
	ErrNotFound = errors.New("object not found")
	// ErrPhaseNotFound is returned when a target lacks the requested build phase.
	ErrPhaseNotFound = errors.New("build phase not found")
)

// Object is one entry of the objects dictionary. It aliases the decoded map,
// so edits through an Object are edits to the project.
type Object map[string]any

// ISA returns the object's class name (PBXGroup, PBXNativeTarget, ...).
func (o Object) ISA() string { return o.Field("isa") }

// Field returns a string field, or "" when absent or not a string.
func (o Object) Field(key string) string {
	s, _ := o[key].(string)
	return s
}

// IDs returns a list field as ids. Non-string members are skipped.
func (o Object) IDs(key string) []string {
	raw, _ := o[key].([]any)
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}

func (o Object) push(key, id string) {
	raw, _ := o[key].([]any)
	o[key] = append(raw, id)
}

// Project is a parsed pbxproj graph.
type Project struct {
	path    string
	root    map[string]any
	objects map[string]any
}

// Open reads and parses the project file at path.
func Open(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// Parse decodes pbxproj bytes. The result has no path; use WriteFile to save it.
func Parse(data []byte) (*Project, error) {
	var root map[string]any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding plist: %w", err)
	}
	objects, ok := root["objects"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("project has no objects dictionary")
	}
	p := &Project{root: root, objects: objects}
	if p.project() == nil {
		return nil, fmt.Errorf("project rootObject does not reference a PBXProject")
	}
	return p, nil
}

// Path returns the file the project was opened from, if any.
func (p *Project) Path() string { return p.path }

// Marshal encodes the project as OpenStep text with the Xcode header.
// Non-ASCII strings are kept as UTF-8.
func (p *Project) Marshal() ([]byte, error) {
	data, err := encode(p.root)
	if err != nil {
		return nil, fmt.Errorf("encoding project: %w", err)
	}
	return data, nil
}

// WriteFile serializes the project and writes it to path in one call.
func (p *Project) WriteFile(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := platform.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}
	return nil
}

// Save writes the project back to the file it was opened from.
func (p *Project) Save() error {
	if p.path == "" {
		return fmt.Errorf("project was not opened from a file")
	}
	return p.WriteFile(p.path)
}

// Object returns the object with the given id.
func (p *Project) Object(id string) (Object, bool) {
	m, ok := p.objects[id].(map[string]any)
	if !ok {
		return nil, false
	}
	return Object(m), true
}

// ObjectsOf returns the ids of every object of class isa, sorted.
func (p *Project) ObjectsOf(isa string) []string {
	var ids []string
	for id, v := range p.objects {
		if m, ok := v.(map[string]any); ok && Object(m).ISA() == isa {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// project returns the PBXProject named by rootObject.
func (p *Project) project() Object {
	id, _ := p.root["rootObject"].(string)
	obj, ok := p.Object(id)
	if !ok || obj.ISA() != "PBXProject" {
		return nil
	}
	return obj
}

// RootObjectID returns the id of the PBXProject object.
func (p *Project) RootObjectID() string {
	id, _ := p.root["rootObject"].(string)
	return id
}

// add stores obj under a fresh id and returns the id.
func (p *Project) add(obj Object) string {
	id := p.newID()
	p.objects[id] = map[string]any(obj)
	return id
}

// newID returns an unused 24-character uppercase hex id.
func (p *Project) newID() string {
	for {
		u := uuid.New()
		id := strings.ToUpper(hex.EncodeToString(u[:12]))
		if _, taken := p.objects[id]; !taken {
			return id
		}
	}
}

// Unquote strips one pair of surrounding double quotes, which values written
// by other tools sometimes carry literally.
func Unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
