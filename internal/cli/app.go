package cli

import (
	"bufio"
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	evbus "github.com/asaskevich/EventBus"

	"github.com/dmitrijs2005/birthdaybook/internal/common"
	"github.com/dmitrijs2005/birthdaybook/internal/config"
	"github.com/dmitrijs2005/birthdaybook/internal/database"
	"github.com/dmitrijs2005/birthdaybook/internal/logging"
	"github.com/dmitrijs2005/birthdaybook/internal/models"
	"github.com/dmitrijs2005/birthdaybook/internal/services"
	"github.com/dmitrijs2005/birthdaybook/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	store       *store.Store
	user        *models.User
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, repos, err := database.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	bus := evbus.New()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st := store.New(db, repos.KV, bus, logger)
	as := services.NewAuthService(repos.KV, bus, []byte(c.SecretKey), c.SessionValidityDuration)

	return &App{
		config:      c,
		authService: as,
		store:       st,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	// Resume a persisted session, if any. The session-changed event makes
	// the store load the user's collections and run the birthday scan.
	user, err := a.authService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrorNoSession) {
			log.Printf("error restoring session: %s", err.Error())
		}
	} else {
		a.user = user
		log.Printf("Welcome back, %s", user.Name)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
