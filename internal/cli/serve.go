package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/snippetly/song-snippetly/internal/catalog"
	"github.com/snippetly/song-snippetly/internal/config"
	"github.com/snippetly/song-snippetly/internal/db"
	"github.com/snippetly/song-snippetly/internal/logging"
	"github.com/snippetly/song-snippetly/internal/spotify"
	"github.com/snippetly/song-snippetly/internal/web"
)

// startupTimeout bounds connecting, migrating and the initial catalog
// load.
const startupTimeout = 30 * time.Second

// app holds the collaborators shared by the serve and seed commands.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *db.DB
	catalog *catalog.Catalog
}

// setup loads configuration, connects to the database, runs migrations
// and loads the catalog snapshot.
func setup(ctx context.Context, cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	cat := catalog.New(database.Snippets())
	if err := cat.Reload(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return &app{cfg: cfg, log: log, db: database, catalog: cat}, nil
}

func (a *app) close() {
	a.db.Close()
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Start the HTTP API server",
		SilenceUsage: true,
		RunE:         runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	a, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		a.cfg.Addr = addr
	}

	music := spotify.New(a.cfg.SpotifyID, a.cfg.SpotifySecret)
	if music.Configured() {
		if err := music.Refresh(ctx); err != nil {
			a.log.Warn("spotify token refresh failed, continuing without it", "error", err)
		}
	} else {
		a.log.Warn("spotify credentials not set, /api/spotify endpoints will be unavailable")
	}

	a.log.Info("catalog loaded", "snippets", a.catalog.Count())

	handlers := web.NewHandlers(web.HandlersConfig{
		Catalog:        a.catalog,
		Music:          music,
		DB:             a.db,
		Log:            a.log,
		ListLimit:      a.cfg.ListLimit,
		MoodSampleSize: a.cfg.MoodSampleSize,
	})
	server := web.NewServer(web.ServerConfig{Addr: a.cfg.Addr}, handlers, a.log)
	return server.Run()
}
