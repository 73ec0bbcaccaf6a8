package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/smarttraffic/internal/client/client"
	"github.com/dmitrijs2005/smarttraffic/internal/client/config"
	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
	"github.com/dmitrijs2005/smarttraffic/internal/client/services"
	"github.com/dmitrijs2005/smarttraffic/internal/client/userstore"
	"github.com/dmitrijs2005/smarttraffic/internal/cryptox"
	"github.com/dmitrijs2005/smarttraffic/internal/logging"
)

// UserLister reports stored accounts; satisfied by *userstore.Store.
type UserLister interface {
	Users(ctx context.Context) ([]models.UserRecord, error)
}

type App struct {
	config          *config.Config
	log             logging.Logger
	db              *sql.DB
	users           UserLister
	authService     services.AuthService
	settingsService services.SettingsService
	speedService    services.SpeedService
	routeService    services.RouteService
	session         *models.Session
	reader          *bufio.Reader
	out             io.Writer
}

// NewApp opens the database named in c and wires the services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	codec, err := cryptox.NewPasswordCodec(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := userstore.New(db, userstore.WithCodec(codec), userstore.WithLogger(log))

	return &App{
		config:          c,
		log:             log,
		db:              db,
		users:           store,
		authService:     services.NewAuthService(store, log),
		settingsService: services.NewSettingsService(db),
		speedService:    services.NewSpeedService(c.DetectionDelay),
		routeService:    services.NewRouteService(c.RouteSearchDelay),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}, nil
}

// Run starts the REPL and closes the database when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	fmt.Fprintln(a.out, "Welcome to SmartTraffic (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "guest"
	}
	return a.session.Email
}
