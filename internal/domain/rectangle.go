// internal/domain/rectangle.go
package domain

import "record-notes/internal/debugfmt"

// Rectangle is an axis-aligned rectangle with integer sides.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Square creates a Rectangle whose sides are both size.
func Square(size uint32) Rectangle {
	return Rectangle{Width: size, Height: size}
}

// Area returns Width * Height.
func (r *Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// CanHold reports whether other fits strictly inside r.
func (r *Rectangle) CanHold(other *Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// DebugStruct implements debugfmt.Debugger for both Rectangle and *Rectangle.
func (r Rectangle) DebugStruct() debugfmt.Struct {
	return debugfmt.NamedStruct("Rectangle",
		debugfmt.Field{Name: "Width", Value: r.Width},
		debugfmt.Field{Name: "Height", Value: r.Height},
	)
}
