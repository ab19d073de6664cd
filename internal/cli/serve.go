package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/project-tracker/internal/api"
	"github.com/nhle/project-tracker/internal/auth"
	"github.com/nhle/project-tracker/internal/config"
	"github.com/nhle/project-tracker/internal/credential"
	"github.com/nhle/project-tracker/internal/store"
)

// NewServeCommand creates the serve command, which opens the store and
// runs the HTTP API until interrupted.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) error {
	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Error("opening store", zap.String("path", cfg.Database.Path), zap.Error(err))
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()
	log.Info("store ready", zap.String("path", cfg.Database.Path))

	resolver, issuer, err := buildIdentity(cfg.Auth, keyringLookup(cfg.Auth.KeyringDir))
	if err != nil {
		return err
	}
	log.Info("identity strategy", zap.String("strategy", cfg.Auth.Strategy))
	if cfg.Auth.Strategy == config.AuthStrategyHeader {
		log.Warn("header identity trusts unsigned client-supplied user ids", zap.String("header", cfg.Auth.Header))
	}

	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(s, auth.NewPasswordHasher(cfg.Auth.BcryptCost), issuer, log)
	router := api.NewRouter(api.RouterConfig{
		Handler:     handler,
		Resolver:    resolver,
		Logger:      log,
		AuthHeader:  cfg.Auth.Header,
		CORSOrigins: cfg.Server.CORSOrigins,
		StaticDir:   cfg.Server.StaticDir,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// secretLookup fetches a named secret, e.g. from the keyring.
type secretLookup func(key string) (string, error)

func keyringLookup(dir string) secretLookup {
	return func(key string) (string, error) {
		creds, err := credential.Open(dir)
		if err != nil {
			return "", err
		}
		return creds.Get(key)
	}
}

// buildIdentity selects the identity resolver. The token strategy takes its
// secret from configuration first, then from lookup.
func buildIdentity(cfg config.AuthConfig, lookup secretLookup) (auth.Resolver, auth.TokenIssuer, error) {
	switch cfg.Strategy {
	case config.AuthStrategyHeader:
		return auth.NewHeaderResolver(cfg.Header), nil, nil
	case config.AuthStrategyToken:
		secret := cfg.TokenSecret
		if secret == "" {
			var err error
			secret, err = lookup(credential.TokenSecretKey)
			if err != nil {
				return nil, nil, fmt.Errorf("loading token secret: %w", err)
			}
		}
		authority, err := auth.NewTokenAuthority(secret, cfg.TokenTTL)
		if err != nil {
			return nil, nil, err
		}
		return authority, authority, nil
	default:
		return nil, nil, fmt.Errorf("unknown auth strategy %q", cfg.Strategy)
	}
}
