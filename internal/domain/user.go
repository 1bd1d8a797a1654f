// internal/domain/user.go
package domain

import "record-notes/internal/debugfmt"

// User represents an account record.
// Active and SignInCount are plain scalars and are copied freely; Username and
// Email are owned Text and move when a User is built from another one.
type User struct {
	Active      bool
	Username    Text
	Email       Text
	SignInCount uint64
}

// NewUser creates a User. Every field has to be supplied; there are no defaults.
func NewUser(active bool, username, email string, signInCount uint64) User {
	return User{
		Active:      active,
		Username:    NewText(username),
		Email:       NewText(email),
		SignInCount: signInCount,
	}
}

// BuildUser creates an active User that has signed in once.
func BuildUser(email, username string) User {
	return NewUser(true, username, email, 1)
}

// UserUpdate lists the fields to override when building a User from another.
// Nil scalars and zero Text values are taken from the source.
type UserUpdate struct {
	Active      *bool
	Username    Text
	Email       Text
	SignInCount *uint64
}

// UpdateFrom builds a User from src and o. Scalars missing from o are copied,
// Text fields missing from o are moved out of src, which panics on any later
// read of them. Fields that o overrides are left untouched on src. If any
// field cannot be moved, UpdateFrom panics without consuming anything.
func UpdateFrom(src *User, o UserUpdate) User {
	u := User{
		Active:      src.Active,
		SignInCount: src.SignInCount,
	}
	if o.Active != nil {
		u.Active = *o.Active
	}
	if o.SignInCount != nil {
		u.SignInCount = *o.SignInCount
	}

	// Every Text is read before any is released, so a failing field leaves
	// src as it was.
	var username, email pendingMove
	if o.Username.IsSet() {
		username = claimText("UserUpdate", "Username", o.Username)
	} else {
		username = claimText("User", "Username", src.Username)
	}
	if o.Email.IsSet() {
		email = claimText("UserUpdate", "Email", o.Email, username)
	} else {
		email = claimText("User", "Email", src.Email, username)
	}

	u.Username = username.complete()
	u.Email = email.complete()
	return u
}

// DebugStruct implements debugfmt.Debugger.
func (u User) DebugStruct() debugfmt.Struct {
	return debugfmt.NamedStruct("User",
		debugfmt.Field{Name: "Active", Value: u.Active},
		debugfmt.Field{Name: "Username", Value: readText("User", "Username", u.Username)},
		debugfmt.Field{Name: "Email", Value: readText("User", "Email", u.Email)},
		debugfmt.Field{Name: "SignInCount", Value: u.SignInCount},
	)
}

// Clone duplicates u, including its owned Text.
func (u User) Clone() User {
	return User{
		Active:      u.Active,
		Username:    NewText(readText("User", "Username", u.Username)),
		Email:       NewText(readText("User", "Email", u.Email)),
		SignInCount: u.SignInCount,
	}
}
