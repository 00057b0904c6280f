package xcodeproj

import (
	"path/filepath"
	"strings"
)

const defaultFileType = "file"

var fileTypeByExtension = map[string]string{
	"a":            "archive.ar",
	"app":          "wrapper.application",
	"appex":        "wrapper.app-extension",
	"bundle":       "wrapper.plug-in",
	"dylib":        "compiled.mach-o.dylib",
	"entitlements": "text.plist.entitlements",
	"framework":    "wrapper.framework",
	"h":            "sourcecode.c.h",
	"jpg":          "image.jpeg",
	"m":            "sourcecode.c.objc",
	"markdown":     "text",
	"pch":          "sourcecode.c.h",
	"plist":        "text.plist.xml",
	"png":          "image.png",
	"sh":           "text.script.sh",
	"storyboard":   "file.storyboard",
	"strings":      "text.plist.strings",
	"swift":        "sourcecode.swift",
	"xcassets":     "folder.assetcatalog",
	"xcconfig":     "text.xcconfig",
	"xib":          "file.xib",
}

var fileEncodings = map[string]string{
	"sourcecode.c.h":          "4",
	"sourcecode.c.objc":       "4",
	"sourcecode.swift":        "4",
	"text":                    "4",
	"text.plist.entitlements": "4",
	"text.plist.strings":      "4",
	"text.plist.xml":          "4",
	"text.script.sh":          "4",
	"text.xcconfig":           "4",
}

// FileType returns the lastKnownFileType Xcode uses for name.
func FileType(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if t, ok := fileTypeByExtension[ext]; ok {
		return t
	}
	return defaultFileType
}
