// annotations.go defines the annotation syntax of the WGSL pre-processor. Annotations are
// single-line WGSL comments prefixed with @oxy: that inject registered struct sources and
// generate bind group declarations for them.
package shader

import (
	"fmt"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an annotation within a WGSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the WGSL source of a registered struct at the annotation site.
	//
	// Syntax: //@oxy:include <struct_key>
	//
	// Example: //@oxy:include frame
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a @group/@binding variable declaration whose type is
	// a registered struct, or an array of one.
	//
	// Syntax: //@oxy:group <group> <binding> <address_space> <var_name> <struct_key>
	//
	// Example: //@oxy:group 0 0 storage_uniform frame frame
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// Address space arguments accepted by group annotations.
const (
	AddressSpaceUniform   = "storage_uniform"
	AddressSpaceRead      = "storage_read"
	AddressSpaceReadWrite = "storage_read_write"
)

var addressSpaces = map[string]string{
	AddressSpaceUniform:   "var<uniform>",
	AddressSpaceRead:      "var<storage, read>",
	AddressSpaceReadWrite: "var<storage, read_write>",
}

// Annotation is a single parsed @oxy: annotation.
type Annotation struct {
	Type AnnotationType

	// Line is the 1-based source line of the annotation.
	Line int

	// Key is the struct key for include and group annotations.
	Key string

	// Array is true when a group annotation declares array<Key>.
	Array bool

	// Group, Binding, AddressSpace and VarName are set for group annotations only.
	Group        int
	Binding      int
	AddressSpace string
	VarName      string
}

// parseAnnotation attempts to parse a single line of WGSL source as an @oxy: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case AnnotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		return &Annotation{Type: AnnotationTypeInclude, Line: lineNum, Key: args[1]}, nil
	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @oxy group annotation requires five arguments (group, binding, address space, var name, struct type)", lineNum)
		}
		group, err := strconv.Atoi(args[1])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group number %q in @oxy group annotation", lineNum, args[1])
		}
		binding, err := strconv.Atoi(args[2])
		if err != nil || binding < 0 {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @oxy group annotation", lineNum, args[2])
		}
		if _, ok := addressSpaces[args[3]]; !ok {
			return nil, fmt.Errorf("line %d: unknown address space %q in @oxy group annotation", lineNum, args[3])
		}
		a := &Annotation{
			Type:         AnnotationTypeBindingGroup,
			Line:         lineNum,
			Key:          args[5],
			Group:        group,
			Binding:      binding,
			AddressSpace: args[3],
			VarName:      args[4],
		}
		if inner, ok := strings.CutPrefix(a.Key, "array<"); ok {
			a.Key = strings.TrimSuffix(inner, ">")
			a.Array = true
		}
		return a, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
