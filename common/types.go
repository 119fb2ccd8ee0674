// package common contains plain helper types and math shared by the engine packages. They are not interface-wrapped structs, just plain
// values and functions.
package common

import "fmt"

// Size is a drawable size in pixels.
type Size struct {
	// Width is the horizontal extent in pixels.
	Width int
	// Height is the vertical extent in pixels.
	Height int
}

// Empty reports whether either dimension is zero (or negative).
//
// Returns:
//   - bool: true if the size cannot back a render target
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Aspect returns Width / Height, or 1 when the size is empty.
//
// Returns:
//   - float32: the aspect ratio
func (s Size) Aspect() float32 {
	if s.Empty() {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
