// pre_processor.go implements the WGSL shader pre-processor. It replaces @oxy: annotations with
// registered struct sources and generated bind group declarations, and records the declarations
// so callers can check their bind group layouts against the shader.
package shader

import (
	"fmt"
	"strings"
)

// StructSource pairs a WGSL struct definition (usually embedded from a .wgsl asset) with the
// type name it declares.
type StructSource struct {
	Source string
	Type   string
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry map[string]StructSource
	declarations   []Annotation
}

// PreProcessor expands @oxy: annotations in WGSL source.
type PreProcessor interface {
	// Process replaces include annotations with struct sources and group annotations with
	// @group/@binding declarations. Each struct is included at most once.
	//
	// Parameters:
	//   - source: WGSL source containing annotations
	//
	// Returns:
	//   - string: the expanded source
	//   - error: an error if an annotation is malformed or references an unknown struct
	Process(source string) (string, error)

	// Declarations returns the group annotations found by the last Process call, in source order.
	//
	// Returns:
	//   - []Annotation: the declarations
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor that knows the given structs.
//
// Parameters:
//   - options: WithStruct options registering struct keys
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(options ...PreProcessorOption) PreProcessor {
	p := &preProcessor{structRegistry: map[string]StructSource{}}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = nil
	included := map[string]bool{}

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		entry, ok := p.structRegistry[a.Key]
		if !ok {
			return "", fmt.Errorf("line %d: unknown struct type %q in @oxy %s annotation", a.Line, a.Key, a.Type)
		}

		switch a.Type {
		case AnnotationTypeInclude:
			if !included[a.Key] {
				out = append(out, entry.Source)
				included[a.Key] = true
			}
		case AnnotationTypeBindingGroup:
			wgslType := entry.Type
			if a.Array {
				wgslType = fmt.Sprintf("array<%s>", entry.Type)
			}
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;",
				a.Group, a.Binding, addressSpaces[a.AddressSpace], a.VarName, wgslType))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
