// internal/service/notes_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"record-notes/internal/debugfmt"
	"record-notes/internal/domain"
)

// NotesService defines the interface for the record walkthrough.
type NotesService interface {
	// Walkthrough runs the record scenario, printing results to out and
	// diagnostic inspections to diag.
	Walkthrough(ctx context.Context, out, diag io.Writer) (*Report, error)
}

// Report holds the values the walkthrough produced.
type Report struct {
	// User1 is the mutated original. Its Username was moved into User2.
	User1    domain.User
	User2    domain.User
	// Snapshot is User2 bound immutably before anything else touches it.
	Snapshot domain.Frozen[domain.User]
	Black    domain.Color
	Rect     domain.Rectangle
	Area     uint32
}

// notesService implements the NotesService interface.
type notesService struct {
	logger *slog.Logger
	pretty bool // Use the indented debug form when printing records
}

// NewNotesService creates a new instance of NotesService.
func NewNotesService(logger *slog.Logger, pretty bool) NotesService {
	return &notesService{
		logger: logger,
		pretty: pretty,
	}
}

// Walkthrough builds, mutates, derives and prints the example records.
func (s *notesService) Walkthrough(ctx context.Context, out, diag io.Writer) (*Report, error) {
	report := &Report{}

	// 1. Construct and mutate
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("walkthrough: construct: %w", err)
	}
	user1 := domain.NewUser(true, "someusername123", "someone@example.com", 1)
	user1.Active = false
	s.logger.Debug("Constructed user", "username", user1.Username.Value(), "active", user1.Active)

	// 2. Construct by update
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("walkthrough: update: %w", err)
	}
	user2 := domain.UpdateFrom(&user1, domain.UserUpdate{
		Email: domain.NewText("another@example.com"),
	})
	s.logger.Debug("Derived user by update",
		"username", user2.Username.Value(),
		"email", user2.Email.Value(),
		"source_username_moved", user1.Username.IsMoved(),
		"source_sign_in_count", user1.SignInCount,
	)
	report.User1 = user1
	report.User2 = user2

	// 3. Immutable binding
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("walkthrough: freeze: %w", err)
	}
	report.Snapshot = domain.Freeze(user2)
	view := report.Snapshot.Get()
	view.SignInCount++
	s.logger.Debug("Froze derived user",
		"frozen_sign_in_count", report.Snapshot.Get().SignInCount,
		"copy_sign_in_count", view.SignInCount,
	)

	// 4. Tuple record, debug form and inspection
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("walkthrough: tuple record: %w", err)
	}
	black := domain.Color{0, 0, 0}
	if err := debugfmt.Fprint(out, black, s.pretty); err != nil {
		return nil, fmt.Errorf("walkthrough: %w", err)
	}
	report.Black = debugfmt.DbgTo(diag, black)
	s.logger.Debug("Printed tuple record", "value", debugfmt.Format(black))

	// 5. Method on a record
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("walkthrough: method: %w", err)
	}
	rect1 := domain.Rectangle{Width: 30, Height: 50}
	report.Rect = rect1
	report.Area = rect1.Area()
	if _, err := fmt.Fprintln(out, report.Area); err != nil {
		return nil, fmt.Errorf("walkthrough: failed to write area: %w", err)
	}
	s.logger.Debug("Computed area", "rectangle", debugfmt.Format(rect1), "area", report.Area)

	return report, nil
}
