// Package preferences resolves plugin preferences and substitutes them into
// the share extension's source and config files.
//
// A preference is looked up first in the plugin block of package.json and
// then in config.xml <preference> elements. Substitution replaces __KEY__
// placeholders in place before the files are registered with Xcode.
package preferences
