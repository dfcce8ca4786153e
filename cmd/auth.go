package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/movu-app/movu/internal/server"
	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
	"github.com/movu-app/movu/internal/validation"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in with email and password and stores the session locally.
//
// Only the user ID is persisted; profile details are fetched on demand.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	form := validation.Form{validation.FieldEmail: email}
	if msg := validation.ValidateField(validation.FieldEmail, email, form); msg != "" {
		return fmt.Errorf("%w: %s", shared.ErrInvalidInput, msg)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", shared.ErrInvalidInput)
	}

	r.logger.Infof("signing in as %v", email)

	result, err := r.movu.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if err := r.openDatabase(); err != nil {
		return err
	}
	if err := r.sessions.Set(result.UserID, nil); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Info("signed in", "user", result.UserID)

	r.writePlain("✓ Signed in\n")
	r.writePlain("  User: %s\n", result.UserID)
	return nil
}

// AuthRegister creates a new account after validating the form fields.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	confirm := cmd.String("confirm-password")
	if confirm == "" {
		confirm = cmd.String("password")
	}

	form := validation.Form{
		validation.FieldFirstName:       cmd.String("first-name"),
		validation.FieldLastName:        cmd.String("last-name"),
		validation.FieldAge:             cmd.String("age"),
		validation.FieldEmail:           cmd.String("email"),
		validation.FieldPassword:        cmd.String("password"),
		validation.FieldConfirmPassword: confirm,
	}

	if errs := validation.ValidateForm(form); len(errs) > 0 {
		for field, msg := range errs {
			r.writePlain("✗ %s: %s\n", field, msg)
		}
		return fmt.Errorf("%w: registration form is invalid", shared.ErrInvalidInput)
	}

	age, _ := strconv.Atoi(form[validation.FieldAge])
	input := services.RegisterInput{
		FirstName: form[validation.FieldFirstName],
		LastName:  form[validation.FieldLastName],
		Age:       age,
		Email:     form[validation.FieldEmail],
		Password:  form[validation.FieldPassword],
	}

	r.logger.Infof("registering account for %v", input.Email)

	user, err := r.movu.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Account created\n")
	r.writePlain("  Name: %s\n", user.FullName())
	r.writePlain("  Email: %s\n", user.Email)
	r.writePlain("\nSign in with: movu auth login -e %s -p <password>\n", user.Email)
	return nil
}

// AuthReset requests a password reset link for the given email.
//
// With --listen, a local HTTP server captures the token when the emailed link
// is opened, and --new-password completes the reset in the same run.
func (r *Runner) AuthReset(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	listen := cmd.Bool("listen")
	newPassword := cmd.String("new-password")

	form := validation.Form{validation.FieldEmail: email}
	if msg := validation.ValidateField(validation.FieldEmail, email, form); msg != "" {
		return fmt.Errorf("%w: %s", shared.ErrInvalidInput, msg)
	}

	r.logger.Infof("requesting password reset for %v", email)

	message, err := r.movu.RequestPasswordReset(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Reset requested: %s\n", message)

	if !listen {
		r.writePlain("Complete it with: movu auth confirm-reset --token <token> --new-password <password>\n")
		return nil
	}

	token, err := r.captureResetToken(ctx)
	if err != nil {
		return err
	}

	r.writePlain("✓ Token captured: %s\n", token)

	if newPassword == "" {
		r.writePlain("Complete it with: movu auth confirm-reset --token %s --new-password <password>\n", token)
		return nil
	}

	confirmMessage, err := r.movu.ConfirmPasswordReset(ctx, token, newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Password updated: %s\n", confirmMessage)
	return nil
}

// AuthConfirmReset completes a password reset with a captured token.
func (r *Runner) AuthConfirmReset(ctx context.Context, cmd *cli.Command) error {
	token := cmd.String("token")
	newPassword := cmd.String("new-password")
	confirm := cmd.String("confirm-password")
	if confirm == "" {
		confirm = newPassword
	}

	form := validation.Form{
		validation.FieldPassword:        newPassword,
		validation.FieldConfirmPassword: confirm,
	}
	if errs := validation.ValidateForm(form); len(errs) > 0 {
		for field, msg := range errs {
			r.writePlain("✗ %s: %s\n", field, msg)
		}
		return fmt.Errorf("%w: new password is invalid", shared.ErrInvalidInput)
	}

	r.logger.Info("confirming password reset")

	message, err := r.movu.ConfirmPasswordReset(ctx, token, newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Password updated: %s\n", message)
	return nil
}

// AuthDeleteAccount deletes the signed-in account. Deletion failures degrade
// to a message rather than an error.
func (r *Runner) AuthDeleteAccount(ctx context.Context, cmd *cli.Command) error {
	session, err := r.requireSession()
	if err != nil {
		return err
	}

	if !cmd.Bool("yes") {
		r.writePlain("This permanently deletes account %s.\n", session.UserID)
		r.writePlain("Re-run with --yes to confirm.\n")
		return nil
	}

	r.logger.Info("deleting account", "user", session.UserID)

	if !r.movu.DeleteUser(ctx, session.UserID) {
		r.writePlain("✗ Could not delete account\n")
		return nil
	}

	if err := r.sessions.Clear(); err != nil {
		r.logger.Warn("failed to clear session", "error", err)
	}

	r.writePlain("✓ Account deleted\n")
	return nil
}

// AuthStatus shows the stored session and verifies it against the API.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	session, err := r.requireSession()
	if err != nil {
		return err
	}

	r.writePlain("✓ Signed in\n")
	r.writePlain("  User: %s\n", session.UserID)
	r.writePlain("  Since: %s\n", session.UpdatedAt.Format(time.RFC822))

	user, err := r.movu.User(ctx, session.UserID)
	if err != nil {
		r.writePlain("  Server: unreachable (%v)\n", err)
		return nil
	}
	if user == nil {
		r.writePlain("  Server: account no longer exists\n")
		return nil
	}

	r.writePlain("  Server: ✓ %s <%s>\n", user.FullName(), user.Email)
	return nil
}

// captureResetToken runs a one-shot local HTTP server until the reset link is
// opened or the timeout elapses.
func (r *Runner) captureResetToken(ctx context.Context) (string, error) {
	resetHandler := server.NewResetTokenHandler()
	router := server.NewBasicRouter()
	router.Handler(resetHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting reset capture server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Waiting for the reset link at http://%s/reset (2 minute timeout)...\n", serverAddr)

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.ResetResult

	select {
	case result = <-resetHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return "", fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return "", fmt.Errorf("%w: reset capture timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return "", fmt.Errorf("reset capture failed: %w", result.Error())
	}

	if result.Token == "" {
		return "", fmt.Errorf("no token received")
	}

	return result.Token, nil
}
