package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/san-e/flint/core/config"
	"github.com/san-e/flint/core/logger"
	"github.com/san-e/flint/core/paths"
	"github.com/san-e/flint/feature/missions"
)

// installFlag overrides the configured installation root when set.
var installFlag string

func init() {
	RootCmd.PersistentFlags().StringVar(&installFlag, "install", "", "Installation root (overrides INSTALL_PATH)")
}

// bootstrap loads configuration and builds the logger every command needs.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if installFlag != "" {
		cfg.Install.Path = installFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// newSession opens a session on the configured installation root.
func newSession(cfg *config.Config, logg *zap.Logger) (*paths.Session, error) {
	if cfg.Install.Path == "" {
		return nil, fmt.Errorf("no installation root configured (set INSTALL_PATH or pass --install)")
	}
	session := paths.NewSession(logg, cfg.Install.StrictCase)
	if err := session.SetRoot(cfg.Install.Path, cfg.Install.Discovery); err != nil {
		return nil, err
	}
	return session, nil
}

// newService opens a session and the mission service over it.
func newService(cfg *config.Config, logg *zap.Logger) (*missions.Service, error) {
	session, err := newSession(cfg, logg)
	if err != nil {
		return nil, err
	}
	return missions.NewService(session, logg), nil
}
