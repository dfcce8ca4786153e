package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/repositories"
	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
	"github.com/movu-app/movu/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	movu       services.Service
	api        *services.APIService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	db         *sql.DB
	sessions   *repositories.SessionRepository
	cache      *repositories.FavoriteCacheRepository
	engine     *tasks.FavoritesEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Movu       services.Service
	API        *services.APIService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	DB         *sql.DB
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	r := &Runner{
		config:     opts.Config,
		movu:       opts.Movu,
		api:        opts.API,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	if opts.DB != nil {
		r.attachDatabase(opts.DB)
	}

	return r
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, videosCommand, favoritesCommand, profileCommand, commentsCommand, apiCommand, sitemapCommand, aboutCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) attachDatabase(db *sql.DB) {
	r.db = db
	r.sessions = repositories.NewSessionRepository(db)
	r.cache = repositories.NewFavoriteCacheRepository(db)
	r.engine = tasks.NewFavoritesEngine(r.movu, r.cache)
}

// openDatabase lazily opens the configured SQLite database and wires the
// repositories and favorites engine. Migrations run on first open so commands
// work without a prior `movu setup`.
func (r *Runner) openDatabase() error {
	if r.db != nil {
		return nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.attachDatabase(db)
	return nil
}

// requireSession loads the stored session, failing with guidance when absent.
func (r *Runner) requireSession() (*models.Session, error) {
	if err := r.openDatabase(); err != nil {
		return nil, err
	}

	session, err := r.sessions.Current()
	if err != nil {
		if errors.Is(err, shared.ErrNoSession) {
			return nil, fmt.Errorf("%w: not signed in, run 'movu auth login'", shared.ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
