package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
	tu "github.com/movu-app/movu/internal/testing"
	"github.com/urfave/cli/v3"
)

func setupRunnerDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			movu := &tu.MockService{}
			api := &services.APIService{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Movu:       movu,
				API:        api,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.movu != movu {
				t.Error("expected movu to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Config: nil,
			})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: nil,
			})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: nil,
			})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				HTTPClient: nil,
			})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})

		t.Run("with database wires repositories", func(t *testing.T) {
			db := setupRunnerDB(t)
			runner := NewRunner(RunnerOpts{
				Movu: &tu.MockService{},
				DB:   db,
			})

			if runner.db != db {
				t.Error("expected db to be set")
			}
			if runner.sessions == nil {
				t.Error("expected the session repository to be wired")
			}
			if runner.cache == nil {
				t.Error("expected the favorites cache to be wired")
			}
			if runner.engine == nil {
				t.Error("expected the favorites engine to be wired")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "auth", "videos", "favorites", "profile", "comments", "api", "tui"} {
			if !names[want] {
				t.Errorf("expected a %s command to be registered", want)
			}
		}
	})

	t.Run("requireSession", func(t *testing.T) {
		t.Run("fails with guidance when not signed in", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Movu: &tu.MockService{},
				DB:   setupRunnerDB(t),
			})

			_, err := runner.requireSession()
			if err == nil {
				t.Fatal("expected an error without a stored session")
			}
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
			if !strings.Contains(err.Error(), "movu auth login") {
				t.Errorf("expected login guidance, got %v", err)
			}
		})

		t.Run("returns the stored session", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Movu: &tu.MockService{},
				DB:   setupRunnerDB(t),
			})

			if err := runner.sessions.Set("user-7", nil); err != nil {
				t.Fatalf("failed to store session: %v", err)
			}

			session, err := runner.requireSession()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.UserID != "user-7" {
				t.Errorf("expected user-7, got %s", session.UserID)
			}
		})
	})
}

func loginCommand(runner *Runner) *cli.Command {
	return &cli.Command{
		Name: "login",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "password"},
		},
		Action: runner.AuthLogin,
	}
}

func TestAuthLogin(t *testing.T) {
	t.Run("stores the server's user ID on success", func(t *testing.T) {
		movu := &tu.MockService{
			Users: map[string]models.User{
				"user-42": {ID: "user-42", Email: "ada@example.com"},
			},
		}
		runner := NewRunner(RunnerOpts{
			Movu:   movu,
			DB:     setupRunnerDB(t),
			Output: &bytes.Buffer{},
		})

		err := loginCommand(runner).Run(context.Background(),
			[]string{"login", "--email", "ada@example.com", "--password", "Str0ngPass!"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		session, err := runner.sessions.Current()
		if err != nil {
			t.Fatalf("expected a stored session, got %v", err)
		}
		if session.UserID != "user-42" {
			t.Errorf("expected user-42, got %s", session.UserID)
		}
	})

	t.Run("stores nothing when login fails", func(t *testing.T) {
		movu := &tu.MockService{LoginErr: errors.New("bad credentials")}
		runner := NewRunner(RunnerOpts{
			Movu:   movu,
			DB:     setupRunnerDB(t),
			Output: &bytes.Buffer{},
		})

		err := loginCommand(runner).Run(context.Background(),
			[]string{"login", "--email", "ada@example.com", "--password", "Str0ngPass!"})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}

		if _, err := runner.sessions.Current(); !errors.Is(err, shared.ErrNoSession) {
			t.Errorf("expected no stored session, got %v", err)
		}
	})

	t.Run("rejects an invalid email without calling the server", func(t *testing.T) {
		movu := &tu.MockService{LoginErr: errors.New("should not be reached")}
		runner := NewRunner(RunnerOpts{
			Movu:   movu,
			DB:     setupRunnerDB(t),
			Output: &bytes.Buffer{},
		})

		err := loginCommand(runner).Run(context.Background(),
			[]string{"login", "--email", "not-an-email", "--password", "Str0ngPass!"})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
