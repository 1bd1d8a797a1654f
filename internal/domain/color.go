// internal/domain/color.go
package domain

import "record-notes/internal/debugfmt"

// Color is an RGB triple addressed by position: c[0], c[1], c[2].
type Color [3]int32

// DebugStruct implements debugfmt.Debugger.
func (c Color) DebugStruct() debugfmt.Struct {
	return debugfmt.TupleStruct("Color", c[0], c[1], c[2])
}

// Point has the same layout as Color but is a distinct type; a Point is never
// accepted where a Color is expected. It does not opt in to debug formatting.
type Point [3]int32

// AlwaysEqual is a marker type with no fields.
type AlwaysEqual struct{}

// DebugStruct implements debugfmt.Debugger.
func (AlwaysEqual) DebugStruct() debugfmt.Struct {
	return debugfmt.UnitStruct("AlwaysEqual")
}
