package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/chirp/internal/adapters/api/rest"
	"github.com/bnema/chirp/internal/adapters/notify"
	tomlrepo "github.com/bnema/chirp/internal/adapters/repo/toml"
	chainstore "github.com/bnema/chirp/internal/adapters/secrets/chain"
	filestore "github.com/bnema/chirp/internal/adapters/secrets/file"
	passstore "github.com/bnema/chirp/internal/adapters/secrets/pass"
	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/ports"
	"github.com/bnema/chirp/internal/version"
)

const (
	keyAPIBaseURL         = "api.base_url"
	keyAPIAssetBaseURL    = "api.asset_base_url"
	keyAPITimeout         = "api.timeout"
	keyFeedPerPage        = "feed.per_page"
	keyCredentialsBackend = "credentials.backend"
	keyCredentialsDir     = "credentials.dir"
	keyLogLevel           = "log.level"

	backendChain = "chain"
	backendFile  = "file"
	backendPass  = "pass"
)

var errUnknownCredentialsBackend = errors.New("unknown credentials backend")

type app struct {
	cfg      *viper.Viper
	logger   *slog.Logger
	logLevel *slog.LevelVar
	notifier *notify.Terminal

	api      ports.API
	tokens   ports.SecretStore
	session  *application.SessionController
	guard    *application.Guard
	auth     *application.AuthService
	posts    *application.PostService
	likes    *application.LikeService
	profiles *application.ProfileService

	perPage      int
	assetBaseURL string
	now          func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logLevel := new(slog.LevelVar)
	if err := logLevel.UnmarshalText([]byte(cfg.GetString(keyLogLevel))); err != nil {
		return nil, fmt.Errorf("parse %s: %w", keyLogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	tokens, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	drafts, err := tomlrepo.NewDraftRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire draft repository: %w", err)
	}

	api, err := rest.NewClient(rest.Config{
		BaseURL:   cfg.GetString(keyAPIBaseURL),
		UserAgent: "chirp/" + version.Version,
		Timeout:   cfg.GetDuration(keyAPITimeout),
		Tokens:    tokens,
		Logger:    logger.With("component", "rest"),
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	notifier := notify.NewTerminal(os.Stderr)
	session := application.NewSessionController(api, tokens, notifier, logger.With("component", "session"))

	assetBaseURL := cfg.GetString(keyAPIAssetBaseURL)
	if assetBaseURL == "" {
		assetBaseURL = cfg.GetString(keyAPIBaseURL)
	}

	return &app{
		cfg:          cfg,
		logger:       logger,
		logLevel:     logLevel,
		notifier:     notifier,
		api:          api,
		tokens:       tokens,
		session:      session,
		guard:        application.NewGuard(session, logger.With("component", "guard")),
		auth:         application.NewAuthService(api, tokens, session, notifier, logger),
		posts:        application.NewPostService(api, drafts, session, notifier, ports.SystemClock{}, logger),
		likes:        application.NewLikeService(api, session, notifier, logger),
		profiles:     application.NewProfileService(api, session, notifier, logger),
		perPage:      cfg.GetInt(keyFeedPerPage),
		assetBaseURL: assetBaseURL,
		now:          time.Now,
	}, nil
}

// loadConfig reads $XDG_CONFIG_HOME/chirp/config.toml when present. CHIRP_*
// environment variables override file values (api.base_url -> CHIRP_API_BASE_URL).
func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigType("toml")
	cfg.SetEnvPrefix("chirp")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	dataDir, err := dataDir()
	if err != nil {
		return nil, err
	}

	cfg.SetDefault(keyAPIBaseURL, "http://localhost:8000")
	cfg.SetDefault(keyAPIAssetBaseURL, "")
	cfg.SetDefault(keyAPITimeout, 15*time.Second)
	cfg.SetDefault(keyFeedPerPage, 10)
	cfg.SetDefault(keyCredentialsBackend, backendChain)
	cfg.SetDefault(keyCredentialsDir, filepath.Join(dataDir, "secrets"))
	cfg.SetDefault(tomlrepo.DraftsPathKey, filepath.Join(dataDir, "drafts.toml"))
	cfg.SetDefault(keyLogLevel, "warn")

	configDir, err := configDir()
	if err != nil {
		return nil, err
	}
	cfg.SetConfigFile(filepath.Join(configDir, "config.toml"))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", cfg.ConfigFileUsed(), err)
		}
	}

	return cfg, nil
}

func newSecretStore(cfg *viper.Viper) (ports.SecretStore, error) {
	dir := cfg.GetString(keyCredentialsDir)

	switch backend := cfg.GetString(keyCredentialsBackend); backend {
	case backendChain:
		return chainstore.NewPassWithFileFallback(dir)
	case backendFile:
		return filestore.NewStore(dir), nil
	case backendPass:
		return passstore.NewStore(), nil
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", errUnknownCredentialsBackend, backend, backendChain, backendFile, backendPass)
	}
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "chirp"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "chirp"), nil
}

func dataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "chirp"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "chirp"), nil
}
