// Package topotab holds module-wide metadata.
package topotab

// Version is the current topotab release version.
const Version = "0.1.0"
