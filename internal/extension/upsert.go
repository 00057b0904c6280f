package extension

import (
	"fmt"
	"strconv"

	"github.com/openwith/sharext/internal/xcodeproj"
	"github.com/sirupsen/logrus"
)

// Fixed names of the extension inside the Xcode project.
const (
	// TargetName is the native target and product name.
	TargetName = "ShareExt"
	// FolderName is the product folder, the source directory under
	// platforms/ios and the name and path of the file group.
	FolderName = "ShareExtension"
	// ParentGroupName is the Cordova group the file group is attached to.
	ParentGroupName = "CustomTemplate"
)

// UpsertResult describes what Upsert found or created.
type UpsertResult struct {
	Target        *xcodeproj.Target
	TargetCreated bool
	GroupKey      string
	GroupCreated  bool
	// Parented is false when a new group could not be attached because the
	// parent group is missing.
	Parented bool
}

// FindTarget looks the extension target up by its name or its quoted name.
func FindTarget(p *xcodeproj.Project) (*xcodeproj.Target, bool) {
	if t, ok := p.TargetByName(TargetName); ok {
		return t, true
	}
	return p.TargetByName(strconv.Quote(TargetName))
}

// Upsert makes sure the extension target, its sources and resources phases
// and its file group exist, then registers files with them. Phases are only
// created together with a new target; an existing target is trusted to have
// them already.
func Upsert(p *xcodeproj.Project, files Files, log logrus.FieldLogger) (*UpsertResult, error) {
	res := &UpsertResult{}

	target, ok := FindTarget(p)
	if ok {
		log.Infof("%s target already exists", TargetName)
	} else {
		var err error
		target, err = p.AddTarget(TargetName, xcodeproj.KindAppExtension, FolderName)
		if err != nil {
			return nil, fmt.Errorf("adding %s target: %w", TargetName, err)
		}
		// An extension is built like a separate app, so it gets its own phases.
		for _, isa := range []string{xcodeproj.SourcesBuildPhase, xcodeproj.ResourcesBuildPhase} {
			if _, err := p.AddBuildPhase(isa, target.ID); err != nil {
				return nil, fmt.Errorf("adding %s: %w", isa, err)
			}
		}
		res.TargetCreated = true
		log.WithField("target", target.ID).Infof("Added %s target", TargetName)
	}
	res.Target = target

	groupKey, ok := p.FindGroupKey(FolderName)
	if ok {
		log.Infof("%s group already exists", FolderName)
	} else {
		groupKey = p.CreateGroup(FolderName, FolderName)
		res.GroupCreated = true
		if parent, ok := p.FindGroupKey(ParentGroupName); ok {
			if err := p.AddToGroup(groupKey, parent); err != nil {
				return nil, err
			}
			res.Parented = true
		} else {
			log.Warnf("%s group not found, %s group left at the root", ParentGroupName, FolderName)
		}
	}
	res.GroupKey = groupKey

	if err := addFiles(p, target.ID, groupKey, files); err != nil {
		return nil, err
	}
	return res, nil
}

// addFiles registers config files with the group only, sources with the
// group and sources phase, and resources with the group and resources phase.
func addFiles(p *xcodeproj.Project, targetID, groupKey string, files Files) error {
	for _, f := range files.Config {
		if _, err := p.AddFile(f.Name, groupKey); err != nil {
			return fmt.Errorf("adding config file %s: %w", f.Name, err)
		}
	}
	for _, f := range files.Source {
		if _, err := p.AddSourceFile(f.Name, targetID, groupKey); err != nil {
			return fmt.Errorf("adding source file %s: %w", f.Name, err)
		}
	}
	for _, f := range files.Resource {
		if _, err := p.AddResourceFile(f.Name, targetID, groupKey); err != nil {
			return fmt.Errorf("adding resource file %s: %w", f.Name, err)
		}
	}
	return nil
}
