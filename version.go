// Package sprout scaffolds UI components from templates.
package sprout

// Version is the current Sprout release.
const Version = "0.1.0"
