package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/offer-atlas/pkg/server"
	"github.com/de-tools/offer-atlas/pkg/services/config"
	"github.com/de-tools/offer-atlas/pkg/services/consolidate"
	"github.com/de-tools/offer-atlas/pkg/services/directory"
	"github.com/de-tools/offer-atlas/pkg/store/graph"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	profilesPath string
	profileName  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Offer Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to the consolidation settings file (defaults apply when omitted)")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", "",
		"Path to the directory-credentials ini file (disables contact lookup when omitted)")
	rootCmd.Flags().StringVar(&profileName, "profile", "default",
		"Profile name inside the credentials file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings := consolidate.DefaultSettings()
	if settingsPath != "" {
		var err error
		settings, err = consolidate.LoadSettings(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		logger.Info().Msgf("Settings loaded from `%s`.", settingsPath)
	}

	var resolver directory.Resolver
	if profilesPath != "" {
		registry, err := config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to create config registry: %w", err)
		}

		profile, err := registry.GetProfile(ctx, profileName)
		if err != nil {
			return fmt.Errorf("failed to load profile `%s`: %w", profileName, err)
		}

		client, err := graph.NewClient(profile)
		if err != nil {
			return fmt.Errorf("failed to create directory client: %w", err)
		}
		resolver = directory.NewResolver(client)
		logger.Info().Msgf("Directory lookups enabled with profile `%s`.", profileName)
	} else {
		logger.Info().Msg("No credentials file given, directory lookups disabled.")
	}

	controller := consolidate.NewController(settings)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Controller: controller,
			Directory:  resolver,
		},
	})

	return api.Start()
}
