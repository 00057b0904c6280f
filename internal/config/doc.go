// Package config manages hook settings. Values come, in order of precedence,
// from command-line flags, environment variables (SHAREXT_*, plus IS_DEBUG as
// set by the Cordova build), a project .env file and the user config file at
// ~/.sharext/config.yaml.
package config
