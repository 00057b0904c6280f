// Package xcodeproj reads, edits and writes Xcode project.pbxproj files.
//
// A pbxproj file is an OpenStep property list whose "objects" dictionary holds
// every node of the project graph keyed by a 24-character hex id. Parsing is
// delegated to howett.net/plist. Serialization is done here so strings stay
// raw UTF-8, as the file header declares. This package only knows the
// handful of node kinds needed to add an app extension target: native
// targets, build phases, groups, file references and build configurations.
package xcodeproj
