// Package extension adds the share extension target to a Cordova iOS
// project. A run discovers the files under platforms/ios/ShareExtension,
// substitutes plugin preferences into them, makes sure the ShareExt target,
// its build phases and the ShareExtension group exist, registers the files,
// patches signing build settings and writes project.pbxproj once at the end.
//
// The target, phase and group steps are idempotent. Registering files is not:
// running twice against the same project adds the files twice.
package extension
