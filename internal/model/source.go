// Package model defines the data structures shared by the scanner layers.
package model

import "strings"

// Path represents a file system path.
type Path string

const (
	// ManifestFileName is the project descriptor that marks a Cargo package or workspace.
	ManifestFileName = "Cargo.toml"

	// TargetDirName is the build-output directory cargo writes next to the manifest.
	TargetDirName = "target"
)

// Config is the resolved scan configuration handed to the traversal engine.
// It is never mutated while a scan is running.
type Config struct {
	// ExcludeDirs holds basename suffixes. A child directory whose name ends
	// with any of them is never entered.
	ExcludeDirs []string
	DeleteMode  DeleteMode
	// Strict turns a non-zero exit of the clean tool into a failure of the
	// directory being cleaned.
	Strict bool
	// DryRun reports build roots without invoking the clean tool.
	DryRun bool
}

// IsExcluded reports whether a directory basename ends with one of the
// configured exclusion suffixes.
func (c Config) IsExcluded(name string) bool {
	for _, suffix := range c.ExcludeDirs {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

// ParseExcludeDirs flattens raw exclusion values into suffixes. Each value may
// hold several space separated names; empty entries are dropped since an
// empty suffix would match every directory.
func ParseExcludeDirs(values []string) []string {
	dirs := make([]string, 0, len(values))

	for _, value := range values {
		for _, name := range strings.Split(value, " ") {
			if name == "" {
				continue
			}

			dirs = append(dirs, name)
		}
	}

	return dirs
}
