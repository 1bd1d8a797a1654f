// internal/domain/records_test.go
package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"record-notes/internal/debugfmt"
)

func TestColor(t *testing.T) {
	// Test Case 1: Positional access
	t.Run("Positional", func(t *testing.T) {
		c := Color{10, 20, 30}

		assert.Equal(t, int32(10), c[0])
		assert.Equal(t, int32(20), c[1])
		assert.Equal(t, int32(30), c[2])
	})

	// Test Case 2: Equal positional values compare equal field by field
	t.Run("StructuralEquality", func(t *testing.T) {
		a := Color{0, 0, 0}
		b := Color{0, 0, 0}

		assert.True(t, a == b)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("colors differ (-a +b):\n%s", diff)
		}
		assert.NotEqual(t, a, Color{0, 0, 1})
	})

	// Test Case 3: Same layout, different type
	t.Run("DistinctFromPoint", func(t *testing.T) {
		c := Color{1, 2, 3}
		p := Point{1, 2, 3}

		assert.NotEqual(t, any(c), any(p))
		assert.Equal(t, Point(c), p)
	})

	// Test Case 4: Derived debug form names the type and lists the values in order
	t.Run("DebugForm", func(t *testing.T) {
		black := Color{0, 0, 0}

		assert.Equal(t, "Color(0, 0, 0)", debugfmt.Format(black))
		assert.Equal(t, "Color(\n    0,\n    0,\n    0,\n)", debugfmt.Pretty(black))
	})
}

func TestAlwaysEqual(t *testing.T) {
	subject := AlwaysEqual{}

	assert.Equal(t, AlwaysEqual{}, subject)
	assert.Equal(t, "AlwaysEqual", debugfmt.Format(subject))
	assert.Equal(t, "AlwaysEqual", debugfmt.Pretty(subject))
}

func TestRectangle(t *testing.T) {
	t.Run("Area", func(t *testing.T) {
		rect1 := Rectangle{Width: 30, Height: 50}

		assert.Equal(t, uint32(1500), rect1.Area())
		// Explicit address-of is equivalent to the implicit one.
		assert.Equal(t, rect1.Area(), (&rect1).Area())
	})

	t.Run("Square", func(t *testing.T) {
		sq := Square(3)

		assert.Equal(t, Rectangle{Width: 3, Height: 3}, sq)
		assert.Equal(t, uint32(9), sq.Area())
	})

	t.Run("CanHold", func(t *testing.T) {
		rect1 := Rectangle{Width: 30, Height: 50}
		rect2 := Rectangle{Width: 10, Height: 40}
		rect3 := Rectangle{Width: 60, Height: 45}

		assert.True(t, rect1.CanHold(&rect2))
		assert.False(t, rect1.CanHold(&rect3))
		assert.False(t, rect1.CanHold(&rect1))
	})

	t.Run("DebugForm", func(t *testing.T) {
		rect1 := Rectangle{Width: 30, Height: 50}

		assert.Equal(t, "Rectangle { Width: 30, Height: 50 }", debugfmt.Format(rect1))
		assert.Equal(t, "Rectangle { Width: 30, Height: 50 }", debugfmt.Format(&rect1))
		assert.Equal(t, "Rectangle {\n    Width: 30,\n    Height: 50,\n}", debugfmt.Pretty(rect1))
	})

	t.Run("NestedByValue", func(t *testing.T) {
		f := frame{r: Rectangle{Width: 3, Height: 4}}

		assert.Equal(t, "Frame(Rectangle { Width: 3, Height: 4 })", debugfmt.Format(f))
	})
}

// frame holds a Rectangle by value.
type frame struct{ r Rectangle }

func (f frame) DebugStruct() debugfmt.Struct {
	return debugfmt.TupleStruct("Frame", f.r)
}

func TestFrozen(t *testing.T) {
	// Test Case 1: Scalar changes on a copy stay on the copy
	t.Run("MutateCopy", func(t *testing.T) {
		frozen := Freeze(NewUser(true, "someusername123", "someone@example.com", 1))

		view := frozen.Get()
		view.Active = false
		view.SignInCount = 99

		assert.False(t, view.Active)
		assert.Equal(t, uint64(99), view.SignInCount)
		assert.True(t, frozen.Get().Active)
		assert.Equal(t, uint64(1), frozen.Get().SignInCount)
	})

	// Test Case 2: Moving out of a copy leaves the frozen value readable
	t.Run("MoveFromCopy", func(t *testing.T) {
		frozen := Freeze(NewUser(true, "someusername123", "someone@example.com", 1))

		view := frozen.Get()
		derived := UpdateFrom(&view, UserUpdate{})

		assert.True(t, view.Username.IsMoved())
		assert.Equal(t, "someusername123", derived.Username.Value())
		assert.Equal(t, NewUser(true, "someusername123", "someone@example.com", 1), frozen.Get())
	})

	// Test Case 3: The original binding no longer reaches the frozen value
	t.Run("MoveFromOriginal", func(t *testing.T) {
		user := NewUser(true, "someusername123", "someone@example.com", 1)
		frozen := Freeze(user)

		_ = UpdateFrom(&user, UserUpdate{})

		assert.Equal(t, "someone@example.com", frozen.Get().Email.Value())
	})
}
