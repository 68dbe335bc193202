// Command setlist orders a Spotify playlist into a DJ-style setlist with
// small tempo steps and harmonically compatible transitions.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/harmoniq-labs/setlist/internal/adapters/spotify"
	"github.com/harmoniq-labs/setlist/internal/adapters/sqlite"
	"github.com/harmoniq-labs/setlist/internal/adapters/textfile"
	"github.com/harmoniq-labs/setlist/internal/config"
	"github.com/harmoniq-labs/setlist/internal/core/services"
	"github.com/harmoniq-labs/setlist/internal/log"
)

const (
	flagConfig = "config"
	flagFirst  = "first"
	flagMax    = "max"
	flagOut    = "out"
	flagSeed   = "seed"
)

func main() {
	logger := log.New(os.Stderr)

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatal().Err(err).Msg("failed to load .env file")
		}
	}

	app := &cli.App{
		Name:  "setlist",
		Usage: "generate DJ-style setlists from Spotify playlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "build a setlist from a playlist URL, URI or ID",
				ArgsUsage: "<playlist>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagFirst,
						Usage: "opener hint, matched against \"name - artist\" (random when omitted)",
					},
					&cli.IntFlag{
						Name:  flagMax,
						Usage: "maximum setlist length (overrides config)",
					},
					&cli.StringFlag{
						Name:  flagOut,
						Usage: "output directory for the text export (overrides config)",
					},
					&cli.Int64Flag{
						Name:  flagSeed,
						Usage: "random seed for reproducible builds (defaults to current time)",
					},
				},
				Action: func(c *cli.Context) error {
					return runBuild(c, logger)
				},
			},
			{
				Name:  "history",
				Usage: "list previously built setlists",
				Action: func(c *cli.Context) error {
					return runHistory(c, logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("setlist failed")
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.FromFile(c.String(flagConfig))
	if err != nil {
		return config.Config{}, err
	}
	if max := c.Int(flagMax); max > 0 {
		cfg.MaxLength = max
	}
	if out := c.String(flagOut); out != "" {
		cfg.OutputDir = out
	}
	return cfg, nil
}

func spotifyCredentials() (string, string, error) {
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return "", "", errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}
	return clientID, clientSecret, nil
}

func runBuild(c *cli.Context, logger zerolog.Logger) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one playlist argument")
	}

	playlistID, err := spotify.ParsePlaylistID(c.Args().First())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	clientID, clientSecret, err := spotifyCredentials()
	if err != nil {
		return err
	}

	seed := c.Int64(flagSeed)
	if !c.IsSet(flagSeed) {
		seed = time.Now().UnixNano()
	}

	ctx := c.Context

	repo, err := sqlite.NewAdapter(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer repo.Close()

	httpClient := spotify.NewCredentialsClient(ctx, clientID, clientSecret, spotify.DefaultTokenURL)
	catalog := spotify.NewClient(httpClient, spotify.DefaultBaseURL, logger)
	writer := textfile.NewWriter(cfg.OutputDir)

	builder := services.NewBuilder(services.NewSeededChooser(seed), services.BuildParams{
		TempoWindow:     cfg.TempoWindow,
		EscalatedWindow: cfg.EscalatedWindow,
		AllowHalfDouble: cfg.AllowHalfDoubleTempo,
		AudioWeight:     cfg.AudioWeight,
		GenreWeight:     cfg.GenreWeight,
	})
	generator := services.NewGenerator(catalog, repo, writer, builder)

	logger.Info().Str("playlist_id", playlistID).Int64("seed", seed).Msg("fetching playlist")

	result, err := generator.Generate(ctx, services.GenerateRequest{
		PlaylistID:       playlistID,
		OpenerHint:       c.String(flagFirst),
		FallbackToRandom: true,
		MaxLength:        cfg.MaxLength,
	})
	if err != nil {
		return err
	}
	if result.HintMissed {
		logger.Warn().Str("hint", c.String(flagFirst)).Msg("opener hint matched nothing, picked a random opener")
	}

	fmt.Println("Final setlist:")
	for _, t := range result.Setlist.Tracks {
		fmt.Println(textfile.FormatLine(t))
	}

	logger.Info().
		Int("placed", result.Setlist.Len()).
		Int("leftover", len(result.Leftover)).
		Str("output", result.OutputPath).
		Msg("setlist written")
	return nil
}

func runHistory(c *cli.Context, logger zerolog.Logger) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, err := sqlite.NewAdapter(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer repo.Close()

	setlists, err := repo.List(c.Context)
	if err != nil {
		return err
	}
	if len(setlists) == 0 {
		logger.Info().Msg("no setlists built yet")
		return nil
	}

	for _, s := range setlists {
		fmt.Printf("%s  %s  playlist=%s  tracks=%d\n", s.CreatedAt.Format(time.RFC3339), s.ID, s.PlaylistID, s.Len())
		for _, t := range s.Tracks {
			fmt.Println("  " + textfile.FormatLine(t))
		}
	}
	return nil
}
