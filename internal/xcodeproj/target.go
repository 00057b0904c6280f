package xcodeproj

import (
	"fmt"
)

// Build phase classes.
const (
	SourcesBuildPhase   = "PBXSourcesBuildPhase"
	ResourcesBuildPhase = "PBXResourcesBuildPhase"
	CopyFilesBuildPhase = "PBXCopyFilesBuildPhase"
)

// buildActionMask is the value Xcode writes for every phase.
const buildActionMask = "2147483647"

// dstSubfolderPlugIns is the copy-files destination for app extensions.
const dstSubfolderPlugIns = "13"

// TargetKind selects the product type of a new target.
type TargetKind string

const (
	KindAppExtension TargetKind = "app_extension"
	KindApplication  TargetKind = "application"
)

var productTypes = map[TargetKind]string{
	KindAppExtension: "com.apple.product-type.app-extension",
	KindApplication:  "com.apple.product-type.application",
}

var productFileTypes = map[TargetKind]string{
	KindAppExtension: "wrapper.app-extension",
	KindApplication:  "wrapper.application",
}

var productExtensions = map[TargetKind]string{
	KindAppExtension: "appex",
	KindApplication:  "app",
}

// Target is a PBXNativeTarget.
type Target struct {
	ID   string
	Name string
	obj  Object
}

// ProductType returns the target's productType identifier.
func (t *Target) ProductType() string { return t.obj.Field("productType") }

// PhaseIDs returns the ids of the target's build phases in build order.
func (t *Target) PhaseIDs() []string { return t.obj.IDs("buildPhases") }

// Targets returns every native target, ordered as in the PBXProject.
func (p *Project) Targets() []*Target {
	var targets []*Target
	for _, id := range p.project().IDs("targets") {
		if obj, ok := p.Object(id); ok && obj.ISA() == "PBXNativeTarget" {
			targets = append(targets, &Target{ID: id, Name: obj.Field("name"), obj: obj})
		}
	}
	return targets
}

// TargetByName returns the native target whose name equals name exactly.
func (p *Project) TargetByName(name string) (*Target, bool) {
	for _, id := range p.ObjectsOf("PBXNativeTarget") {
		obj, _ := p.Object(id)
		if obj.Field("name") == name {
			return &Target{ID: id, Name: name, obj: obj}, true
		}
	}
	return nil, false
}

// target returns the native target with the given id.
func (p *Project) target(id string) (*Target, error) {
	obj, ok := p.Object(id)
	if !ok || obj.ISA() != "PBXNativeTarget" {
		return nil, fmt.Errorf("target %s: %w", id, ErrNotFound)
	}
	return &Target{ID: id, Name: obj.Field("name"), obj: obj}, nil
}

// AddTarget creates a native target with Debug and Release configurations and
// a product reference, and registers it on the project. subfolder is the
// directory holding the target's Info.plist. An app extension is also
// embedded into the project's first target.
func (p *Project) AddTarget(name string, kind TargetKind, subfolder string) (*Target, error) {
	productType, ok := productTypes[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported target kind %q", kind)
	}
	host := p.Targets()

	debug := p.add(Object{
		"isa":  "XCBuildConfiguration",
		"name": "Debug",
		"buildSettings": map[string]any{
			"GCC_PREPROCESSOR_DEFINITIONS": []any{"DEBUG=1", "$(inherited)"},
			"INFOPLIST_FILE":               subfolder + "/" + subfolder + "-Info.plist",
			"LD_RUNPATH_SEARCH_PATHS":      "$(inherited) @executable_path/Frameworks @executable_path/../../Frameworks",
			"PRODUCT_NAME":                 name,
			"SKIP_INSTALL":                 "YES",
		},
	})
	release := p.add(Object{
		"isa":  "XCBuildConfiguration",
		"name": "Release",
		"buildSettings": map[string]any{
			"INFOPLIST_FILE":          subfolder + "/" + subfolder + "-Info.plist",
			"LD_RUNPATH_SEARCH_PATHS": "$(inherited) @executable_path/Frameworks @executable_path/../../Frameworks",
			"PRODUCT_NAME":            name,
			"SKIP_INSTALL":            "YES",
		},
	})
	configList := p.add(Object{
		"isa":                           "XCConfigurationList",
		"buildConfigurations":           []any{debug, release},
		"defaultConfigurationIsVisible": "0",
		"defaultConfigurationName":      "Release",
	})

	product := p.add(Object{
		"isa":              "PBXFileReference",
		"explicitFileType": productFileTypes[kind],
		"includeInIndex":   "0",
		"path":             name + "." + productExtensions[kind],
		"sourceTree":       "BUILT_PRODUCTS_DIR",
	})
	proj := p.project()
	if products, ok := p.Object(proj.Field("productRefGroup")); ok {
		products.push("children", product)
	}

	obj := Object{
		"isa":                    "PBXNativeTarget",
		"buildConfigurationList": configList,
		"buildPhases":            []any{},
		"buildRules":             []any{},
		"dependencies":           []any{},
		"name":                   name,
		"productName":            name,
		"productReference":       product,
		"productType":            productType,
	}
	id := p.add(obj)
	proj.push("targets", id)
	target := &Target{ID: id, Name: name, obj: obj}

	if kind == KindAppExtension && len(host) > 0 {
		p.embedExtension(host[0], target, product)
	}
	return target, nil
}

// embedExtension copies the extension product into the host's PlugIns folder
// and makes the host depend on the extension target.
func (p *Project) embedExtension(host, ext *Target, product string) {
	buildFile := p.add(Object{
		"isa":      "PBXBuildFile",
		"fileRef":  product,
		"settings": map[string]any{"ATTRIBUTES": []any{"RemoveHeadersOnCopy"}},
	})

	var embed Object
	for _, id := range host.PhaseIDs() {
		phase, ok := p.Object(id)
		if ok && phase.ISA() == CopyFilesBuildPhase && phase.Field("dstSubfolderSpec") == dstSubfolderPlugIns {
			embed = phase
			break
		}
	}
	if embed == nil {
		embed = Object{
			"isa":                                CopyFilesBuildPhase,
			"buildActionMask":                    buildActionMask,
			"dstPath":                            "",
			"dstSubfolderSpec":                   dstSubfolderPlugIns,
			"files":                              []any{},
			"name":                               "Embed App Extensions",
			"runOnlyForDeploymentPostprocessing": "0",
		}
		host.obj.push("buildPhases", p.add(embed))
	}
	embed.push("files", buildFile)

	proxy := p.add(Object{
		"isa":                  "PBXContainerItemProxy",
		"containerPortal":      p.RootObjectID(),
		"proxyType":            "1",
		"remoteGlobalIDString": ext.ID,
		"remoteInfo":           ext.Name,
	})
	dependency := p.add(Object{
		"isa":         "PBXTargetDependency",
		"target":      ext.ID,
		"targetProxy": proxy,
	})
	host.obj.push("dependencies", dependency)
}

// AddBuildPhase creates an empty build phase of class isa and appends it to
// the target's phases. It returns the phase id.
func (p *Project) AddBuildPhase(isa, targetID string) (string, error) {
	target, err := p.target(targetID)
	if err != nil {
		return "", err
	}
	id := p.add(Object{
		"isa":                                isa,
		"buildActionMask":                    buildActionMask,
		"files":                              []any{},
		"runOnlyForDeploymentPostprocessing": "0",
	})
	target.obj.push("buildPhases", id)
	return id, nil
}

// Phase is a build phase of any class.
type Phase struct {
	ID    string
	ISA   string
	Files []string // PBXBuildFile ids
}

// Phases returns the target's build phases in build order.
func (p *Project) Phases(targetID string) ([]*Phase, error) {
	target, err := p.target(targetID)
	if err != nil {
		return nil, err
	}
	var phases []*Phase
	for _, id := range target.PhaseIDs() {
		obj, ok := p.Object(id)
		if !ok {
			continue
		}
		phases = append(phases, &Phase{ID: id, ISA: obj.ISA(), Files: obj.IDs("files")})
	}
	return phases, nil
}

// PhaseOf returns the target's first build phase of class isa.
func (p *Project) PhaseOf(targetID, isa string) (*Phase, error) {
	phases, err := p.Phases(targetID)
	if err != nil {
		return nil, err
	}
	for _, phase := range phases {
		if phase.ISA == isa {
			return phase, nil
		}
	}
	return nil, fmt.Errorf("%s on target %s: %w", isa, targetID, ErrPhaseNotFound)
}

// PhaseFileNames resolves a phase's build files to file reference names.
func (p *Project) PhaseFileNames(phaseID string) []string {
	phase, ok := p.Object(phaseID)
	if !ok {
		return nil
	}
	var names []string
	for _, bf := range phase.IDs("files") {
		buildFile, ok := p.Object(bf)
		if !ok {
			continue
		}
		names = append(names, p.FileName(buildFile.Field("fileRef")))
	}
	return names
}
