// internal/domain/text.go
package domain

import "record-notes/internal/util"

// Text is an owned string held by a record. Unlike the scalar fields it is
// not duplicated when a record is built from another one: Move hands the
// value to the new owner and leaves the old Text unreadable.
//
// Copies of a Text share its state, so every copy of a record observes a move.
// The zero Text was never supplied and is just as unreadable as a moved one.
type Text struct {
	cell *textCell
}

type textCell struct {
	value string
	moved bool
}

// NewText returns a live Text owning s.
func NewText(s string) Text {
	return Text{cell: &textCell{value: s}}
}

// Lookup returns the value, or ErrMissingField / ErrMovedValue.
func (t Text) Lookup() (string, error) {
	switch {
	case t.cell == nil:
		return "", util.ErrMissingField
	case t.cell.moved:
		return "", util.ErrMovedValue
	}
	return t.cell.value, nil
}

// Value returns the owned string. Reading a missing or moved Text is a
// programmer error and panics.
func (t Text) Value() string {
	v, err := t.Lookup()
	if err != nil {
		panic(err)
	}
	return v
}

// Move transfers ownership into a new Text.
func (t Text) Move() Text {
	v := t.Value()
	t.release()
	return NewText(v)
}

func (t Text) release() {
	t.cell.moved = true
	t.cell.value = ""
}

// Clone duplicates the value explicitly; the receiver stays live.
func (t Text) Clone() Text {
	return NewText(t.Value())
}

// IsSet reports whether the Text was ever supplied.
func (t Text) IsSet() bool { return t.cell != nil }

// IsMoved reports whether ownership has been transferred away.
func (t Text) IsMoved() bool { return t.cell != nil && t.cell.moved }

// readText reads t on behalf of a record field, naming the field on failure.
func readText(typ, field string, t Text) string {
	v, err := t.Lookup()
	if err != nil {
		panic(&util.FieldError{Type: typ, Field: field, Err: err})
	}
	return v
}

// pendingMove is a Text that has been read for a move but not yet released.
type pendingMove struct {
	value string
	src   Text
}

// claimText reads t for a move out of a record field without releasing it.
// A t that shares its state with an earlier claim would be moved twice.
func claimText(typ, field string, t Text, earlier ...pendingMove) pendingMove {
	v := readText(typ, field, t)
	for _, p := range earlier {
		if p.src.cell == t.cell {
			panic(&util.FieldError{Type: typ, Field: field, Err: util.ErrMovedValue})
		}
	}
	return pendingMove{value: v, src: t}
}

// complete releases the source and hands the value to a new Text.
func (p pendingMove) complete() Text {
	p.src.release()
	return NewText(p.value)
}
