/*
Package parsers extracts the wanted Node.js version from the requirement
files a project may carry.

Goals:
 - Reading a pinned version from version files (.nvmrc, .node-version)
 - Reading a version range from manifests (package.json engines.node)
*/
package parsers

import (
	"context"
	"errors"
)

var (
	ErrFileNotFound = errors.New("requirement file not found")
	// ErrNoRequirement is returned when the file exists but carries no
	// Node version requirement.
	ErrNoRequirement = errors.New("no node version requirement found")
)

// RequirementParser reads one requirement-file format.
type RequirementParser interface {
	// Requirement returns the raw Node version requirement: a pinned
	// version for version files, a range expression for manifests.
	Requirement(ctx context.Context) (string, error)
}
