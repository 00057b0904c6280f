// Package platform locates the Cordova iOS platform inside a project: the
// platforms/ios directory, its Xcode project and the extension sources. It
// also holds the file replacement used when writing into the platform tree.
package platform
