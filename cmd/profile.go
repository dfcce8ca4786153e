package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
	"github.com/movu-app/movu/internal/validation"
	"github.com/urfave/cli/v3"
)

// ProfileShow prints the signed-in user's profile.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	session, err := r.requireSession()
	if err != nil {
		return err
	}

	user, err := r.movu.User(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if user == nil {
		return fmt.Errorf("%w: %s", shared.ErrUserNotFound, session.UserID)
	}

	if useJSON {
		return r.writeJSON(user, pretty)
	}

	r.writePlainHeader("Profile")
	r.writePlain("Name: %s\n", user.FullName())
	r.writePlain("Age: %d\n", user.Age)
	r.writePlain("Email: %s\n", user.Email)
	r.writePlain("ID: %s\n", user.ID)
	return nil
}

// ProfileEdit applies a partial update from the provided flags. Only flags
// that were set are validated and sent.
func (r *Runner) ProfileEdit(ctx context.Context, cmd *cli.Command) error {
	session, err := r.requireSession()
	if err != nil {
		return err
	}

	patch := services.UserPatch{}
	form := validation.Form{}
	changed := false

	if firstName := cmd.String("first-name"); firstName != "" {
		form[validation.FieldFirstName] = firstName
		patch.FirstName = &firstName
		changed = true
	}
	if lastName := cmd.String("last-name"); lastName != "" {
		form[validation.FieldLastName] = lastName
		patch.LastName = &lastName
		changed = true
	}
	if ageText := cmd.String("age"); ageText != "" {
		form[validation.FieldAge] = ageText
		age, _ := strconv.Atoi(ageText)
		patch.Age = &age
		changed = true
	}
	if email := cmd.String("email"); email != "" {
		form[validation.FieldEmail] = email
		patch.Email = &email
		changed = true
	}

	if !changed {
		return fmt.Errorf("%w: provide at least one of --first-name, --last-name, --age, --email", shared.ErrMissingArgument)
	}

	if errs := validation.ValidateForm(form); len(errs) > 0 {
		for field, msg := range errs {
			r.writePlain("✗ %s: %s\n", field, msg)
		}
		return fmt.Errorf("%w: profile update is invalid", shared.ErrInvalidInput)
	}

	r.logger.Info("updating profile", "user", session.UserID)

	user, err := r.movu.UpdateUser(ctx, session.UserID, patch)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Profile updated\n")
	r.writePlain("  Name: %s\n", user.FullName())
	r.writePlain("  Age: %d\n", user.Age)
	r.writePlain("  Email: %s\n", user.Email)
	return nil
}
