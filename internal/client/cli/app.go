package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/services"
	"github.com/dmitrijs2005/shopkeeper/internal/client/session"
	"github.com/dmitrijs2005/shopkeeper/internal/filex"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// sessionAPI is the part of *session.Session the commands use.
type sessionAPI interface {
	IsAuthenticated() bool
	UserName() string
	LoginUser(ctx context.Context, email, password string) error
	LogoutUser(ctx context.Context)
	Claims() (session.Claims, bool)
}

type directoryAPI interface {
	Refresh(ctx context.Context) error
	Visible() []models.User
	Search(q string) []models.User
	Create(ctx context.Context, u models.NewUser) error
}

type catalogAPI interface {
	Refresh(ctx context.Context) error
	Products() []models.Product
}

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	auth      services.AuthService
	session   sessionAPI
	directory directoryAPI
	catalog   catalogAPI
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the session database, builds the API client and services,
// and restores the persisted session.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		log.Error(ctx, "error preparing database directory", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	db, err := client.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log.With("component", "api"))

	as := services.NewAuthService(apiClient, log)
	sess, err := session.New(ctx, as, services.NewSessionStore(db), log.With("component", "session"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:    c,
		log:       log,
		db:        db,
		auth:      as,
		session:   sess,
		directory: services.NewDirectory(apiClient, c.DefaultAvatar, log.With("component", "directory")),
		catalog:   services.NewCatalog(apiClient, log.With("component", "catalog")),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the REPL and releases resources when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	fmt.Fprintln(a.out, "Welcome to shopkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close(ctx context.Context) {
	if a.auth != nil {
		_ = a.auth.Close(ctx)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt suffix: the display name when logged in.
func (a *App) getStatus() string {
	if !a.session.IsAuthenticated() {
		return ""
	}
	name := a.session.UserName()
	if name == "" {
		name = "logged in"
	}
	return fmt.Sprintf("(%s)", name)
}
