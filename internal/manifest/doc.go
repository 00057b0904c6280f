// Package manifest reads the two Cordova project files the hook depends on:
// config.xml (the app manifest, kept as raw text for preference lookups plus
// a decoded <widget> header) and package.json (package metadata holding the
// plugin variables). package.json is validated against an embedded JSON
// Schema before it is decoded.
package manifest
