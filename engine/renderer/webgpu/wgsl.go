package webgpu

import (
	"errors"
	"regexp"
)

var (
	// vertexEntryRegex matches @vertex functions and captures the entry point name
	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	// fragmentEntryRegex matches @fragment functions and captures the entry point name
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)
)

var (
	// ErrNoVertexEntry is returned when WGSL source has no @vertex function.
	ErrNoVertexEntry = errors.New("webgpu: no @vertex entry point")

	// ErrNoFragmentEntry is returned when WGSL source has no @fragment function.
	ErrNoFragmentEntry = errors.New("webgpu: no @fragment entry point")
)

// EntryPoints finds the first @vertex and @fragment function names in WGSL source.
//
// Parameters:
//   - source: WGSL source
//
// Returns:
//   - string: the vertex entry point
//   - string: the fragment entry point
//   - error: ErrNoVertexEntry or ErrNoFragmentEntry when one is missing
func EntryPoints(source string) (string, string, error) {
	vm := vertexEntryRegex.FindStringSubmatch(source)
	if vm == nil {
		return "", "", ErrNoVertexEntry
	}
	fm := fragmentEntryRegex.FindStringSubmatch(source)
	if fm == nil {
		return "", "", ErrNoFragmentEntry
	}
	return vm[1], fm[1], nil
}
