// Package server provides SSH server functionality for FlexUI.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"

	"github.com/marcusagm/FlexUi-sub004/internal/app"
	"github.com/marcusagm/FlexUi-sub004/internal/config"
	"github.com/marcusagm/FlexUi-sub004/internal/input"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "server",
})

// SetLogLevel adjusts the package log level.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// Config holds configuration for the SSH server.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start initializes and runs the SSH server until the context is done.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "flexui_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	go func() {
		logger.Info("starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil {
			logger.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down SSH server")
	return server.Shutdown(ctx)
}

// teaHandler creates a workbench instance for each SSH session.
func teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sshSession.Pty()
	if !active {
		// No PTY requested, nothing to serve.
		return nil, nil
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config for SSH session, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	app.SetInputHandler(input.HandleInput)

	workbench := app.NewWorkbench(userConfig)
	workbench.Width = pty.Window.Width
	workbench.Height = pty.Window.Height
	workbench.SSHSession = sshSession
	workbench.IsSSHMode = true
	workbench.PerformLayout()

	return workbench, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
