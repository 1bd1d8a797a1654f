// internal/debugfmt/debugfmt.go

// Package debugfmt renders the developer-facing form of record types.
//
// Rendering is opt-in: only values implementing Debugger can be passed to
// Format, Pretty, Fprint or Dbg, so a type that never declared a DebugStruct
// method is rejected by the compiler instead of getting a best-effort default.
package debugfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"record-notes/internal/util"
)

const indent = "    "

// Kind is the shape of a record: named fields, positional fields or none.
type Kind int

const (
	Named Kind = iota
	Tuple
	Unit
)

// Field is one field of a record. Name is empty for positional fields.
type Field struct {
	Name  string
	Value any
}

// Struct describes a record for rendering.
type Struct struct {
	Name   string
	Kind   Kind
	Fields []Field
}

// Debugger is implemented by types that opt in to the debug form.
type Debugger interface {
	DebugStruct() Struct
}

// NamedStruct describes a record with named fields, in declaration order.
func NamedStruct(name string, fields ...Field) Struct {
	return Struct{Name: name, Kind: Named, Fields: fields}
}

// TupleStruct describes a record addressed by position.
func TupleStruct(name string, values ...any) Struct {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Value: v}
	}
	return Struct{Name: name, Kind: Tuple, Fields: fields}
}

// UnitStruct describes a record with no fields.
func UnitStruct(name string) Struct {
	return Struct{Name: name, Kind: Unit}
}

// Format returns the single-line debug form, e.g. Color(0, 0, 0).
func Format(v Debugger) string {
	return render(v.DebugStruct(), false)
}

// Pretty returns the multi-line debug form with four-space indentation.
func Pretty(v Debugger) string {
	return render(v.DebugStruct(), true)
}

// Fprint writes the debug form of v followed by a newline.
func Fprint(w io.Writer, v Debugger, pretty bool) error {
	s := Format(v)
	if pretty {
		s = Pretty(v)
	}
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("failed to write debug form of %s: %w", v.DebugStruct().Name, err)
	}
	return nil
}

func render(s Struct, pretty bool) string {
	if s.Kind == Unit || len(s.Fields) == 0 {
		return s.Name
	}

	open, closing := " { ", " }"
	if s.Kind == Tuple {
		open, closing = "(", ")"
	}

	var b strings.Builder
	b.WriteString(s.Name)

	if !pretty {
		b.WriteString(open)
		for i, f := range s.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderField(s, i, f, false))
		}
		b.WriteString(closing)
		return b.String()
	}

	b.WriteString(strings.TrimRight(open, " "))
	b.WriteString("\n")
	for i, f := range s.Fields {
		b.WriteString(indent)
		b.WriteString(strings.ReplaceAll(renderField(s, i, f, true), "\n", "\n"+indent))
		b.WriteString(",\n")
	}
	b.WriteString(strings.TrimLeft(closing, " "))
	return b.String()
}

func renderField(owner Struct, pos int, f Field, pretty bool) string {
	v, ok := renderValue(f.Value, pretty)
	if !ok {
		name := f.Name
		if name == "" {
			name = strconv.Itoa(pos)
		}
		panic(&util.FieldError{Type: owner.Name, Field: name, Err: util.ErrNotDebuggable})
	}
	if owner.Kind == Named {
		return f.Name + ": " + v
	}
	return v
}

func renderValue(v any, pretty bool) (string, bool) {
	switch x := v.(type) {
	case Debugger:
		return render(x.DebugStruct(), pretty), true
	case string:
		return strconv.Quote(x), true
	case bool:
		return strconv.FormatBool(x), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float32:
		return formatFloat(float64(x), 32), true
	case float64:
		return formatFloat(x, 64), true
	}
	return "", false
}

// formatFloat always keeps a fractional part so 1 renders as 1.0.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
