package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// LoginForm collects credentials interactively.
func LoginForm(email, password *string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("email and password are required")
	}
	return nil
}

// SignupForm collects a new account interactively.
func SignupForm(name, email, password *string, role *session.Role) error {
	roleValue := string(session.RoleUser)
	if *role != "" {
		roleValue = string(*role)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(name),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password),
		huh.NewSelect[string]().
			Title("Role").
			Options(
				huh.NewOption("User", string(session.RoleUser)),
				huh.NewOption("Admin", string(session.RoleAdmin)),
			).
			Value(&roleValue),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("name, email and password are required")
	}

	*role = session.Role(roleValue)
	return nil
}

// EventForm collects event fields interactively. The image path is
// required when requireImage is set (create) and optional otherwise
// (update keeps the stored image when left empty).
func EventForm(f *events.Fields, imagePath *string, requireImage bool) error {
	imageTitle := "Image file (optional)"
	if requireImage {
		imageTitle = "Image file"
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&f.Title),
		huh.NewText().
			Title("Description").
			Value(&f.Description),
		huh.NewInput().
			Title("Date").
			Placeholder("2026-09-01").
			Value(&f.Date),
		huh.NewInput().
			Title("Start time").
			Placeholder("18:00").
			Value(&f.StartTime),
		huh.NewInput().
			Title("End time").
			Placeholder("21:00").
			Value(&f.EndTime),
		huh.NewInput().
			Title("Location").
			Value(&f.Location),
		huh.NewInput().
			Title(imageTitle).
			Placeholder("./poster.png").
			Value(imagePath),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	if err := f.Validate(); err != nil {
		return err
	}
	if requireImage && *imagePath == "" {
		return fmt.Errorf("image file is required")
	}
	if *imagePath != "" {
		if _, err := os.Stat(*imagePath); err != nil {
			return fmt.Errorf("image file not found: %s", *imagePath)
		}
	}
	return nil
}

// ConfirmDelete asks for confirmation before deleting an event.
func ConfirmDelete(title string) (bool, error) {
	confirmed := false

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q? RSVPs are removed with it.", title)).
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
