package shader

// PreProcessorOption configures a PreProcessor.
type PreProcessorOption func(p *preProcessor)

// WithStruct registers a struct under key for include and group annotations.
//
// Parameters:
//   - key: the annotation argument naming the struct
//   - source: the WGSL struct definition
//   - typeName: the struct's WGSL type name
//
// Returns:
//   - PreProcessorOption: option function to apply
func WithStruct(key, source, typeName string) PreProcessorOption {
	return func(p *preProcessor) {
		p.structRegistry[key] = StructSource{Source: source, Type: typeName}
	}
}
