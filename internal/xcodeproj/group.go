package xcodeproj

import (
	"fmt"
	"path/filepath"
)

const groupSourceTree = "<group>"

// FindGroupKey returns the id of the first PBXGroup whose name is name.
func (p *Project) FindGroupKey(name string) (string, bool) {
	for _, id := range p.ObjectsOf("PBXGroup") {
		obj, _ := p.Object(id)
		if obj.Field("name") == name {
			return id, true
		}
	}
	return "", false
}

// CreateGroup adds an unparented PBXGroup and returns its id.
func (p *Project) CreateGroup(name, path string) string {
	obj := Object{
		"isa":        "PBXGroup",
		"children":   []any{},
		"name":       name,
		"sourceTree": groupSourceTree,
	}
	if path != "" {
		obj["path"] = path
	}
	return p.add(obj)
}

// AddToGroup appends child to the children of the group groupKey.
func (p *Project) AddToGroup(child, groupKey string) error {
	group, err := p.group(groupKey)
	if err != nil {
		return err
	}
	group.push("children", child)
	return nil
}

// GroupChildren returns the ids of a group's children.
func (p *Project) GroupChildren(groupKey string) []string {
	group, err := p.group(groupKey)
	if err != nil {
		return nil
	}
	return group.IDs("children")
}

// GroupParent returns the id of the group listing groupKey as a child.
func (p *Project) GroupParent(groupKey string) (string, bool) {
	for _, id := range p.ObjectsOf("PBXGroup") {
		for _, child := range p.GroupChildren(id) {
			if child == groupKey {
				return id, true
			}
		}
	}
	return "", false
}

func (p *Project) group(key string) (Object, error) {
	obj, ok := p.Object(key)
	if !ok || obj.ISA() != "PBXGroup" {
		return nil, fmt.Errorf("group %s: %w", key, ErrNotFound)
	}
	return obj, nil
}

// FileName returns a file reference's name, falling back to its path.
func (p *Project) FileName(fileRef string) string {
	obj, ok := p.Object(fileRef)
	if !ok {
		return ""
	}
	if name := obj.Field("name"); name != "" {
		return name
	}
	return filepath.Base(obj.Field("path"))
}

// AddFile creates a file reference for name inside the group. The file is
// not a member of any build phase. Existing references are not checked, so
// adding the same name twice yields two references.
func (p *Project) AddFile(name, groupKey string) (string, error) {
	group, err := p.group(groupKey)
	if err != nil {
		return "", err
	}
	ref := Object{
		"isa":               "PBXFileReference",
		"lastKnownFileType": FileType(name),
		"name":              name,
		"path":              name,
		"sourceTree":        groupSourceTree,
	}
	if enc, ok := fileEncodings[FileType(name)]; ok {
		ref["fileEncoding"] = enc
	}
	id := p.add(ref)
	group.push("children", id)
	return id, nil
}

// AddSourceFile adds name to the group and to the target's sources phase.
func (p *Project) AddSourceFile(name, targetID, groupKey string) (string, error) {
	return p.addPhaseFile(name, targetID, groupKey, SourcesBuildPhase)
}

// AddResourceFile adds name to the group and to the target's resources phase.
func (p *Project) AddResourceFile(name, targetID, groupKey string) (string, error) {
	return p.addPhaseFile(name, targetID, groupKey, ResourcesBuildPhase)
}

func (p *Project) addPhaseFile(name, targetID, groupKey, isa string) (string, error) {
	phase, err := p.PhaseOf(targetID, isa)
	if err != nil {
		return "", err
	}
	ref, err := p.AddFile(name, groupKey)
	if err != nil {
		return "", err
	}
	buildFile := p.add(Object{"isa": "PBXBuildFile", "fileRef": ref})
	obj, _ := p.Object(phase.ID)
	obj.push("files", buildFile)
	return ref, nil
}
