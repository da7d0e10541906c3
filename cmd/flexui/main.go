// Package main implements FlexUI, a dockable panel workbench for the
// terminal. Panels tab into groups, groups stack into columns and rows, and
// free windows float on a surface or dock into its strip, all rearranged by
// dragging.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/marcusagm/FlexUi-sub004/internal/app"
	"github.com/marcusagm/FlexUi-sub004/internal/config"
	"github.com/marcusagm/FlexUi-sub004/internal/dnd"
	"github.com/marcusagm/FlexUi-sub004/internal/input"
	"github.com/marcusagm/FlexUi-sub004/internal/server"
	"github.com/marcusagm/FlexUi-sub004/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	debugMode bool
	themeName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flexui",
		Short: "Dockable panel workbench for the terminal",
		Long: `FlexUI - dockable panel workbench

Panels tab into groups, groups stack into columns and rows, and free
windows float on a surface or dock into its strip. Drag a tab to move a
panel, a tab row to move a group, a header to move a window.`,
		Example: `  # Run FlexUI
  flexui

  # Run with debug logging
  flexui --debug

  # Run as SSH server
  flexui ssh --port 2222

  # Edit configuration
  flexui config edit`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme name (empty for terminal colors)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run FlexUI as SSH server",
		Long: `Run FlexUI as an SSH server

Allows remote connections to FlexUI via SSH. The server will generate
a host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  flexui ssh

  # Start on custom port
  flexui ssh --port 2222`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage FlexUI configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	rootCmd.AddCommand(sshCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

func applyLogLevel() {
	level := log.WarnLevel
	if debugMode {
		level = log.DebugLevel
	}
	app.SetLogLevel(level)
	dnd.SetLogLevel(level)
	config.SetLogLevel(level)
	server.SetLogLevel(level)
}

func runLocal() error {
	applyLogLevel()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	name := themeName
	if name == "" {
		name = userConfig.Appearance.Theme
	}
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("theme init failed: %w", err)
	}

	// Set up the input handler to break circular dependency
	app.SetInputHandler(input.HandleInput)

	workbench := app.NewWorkbench(userConfig)

	p := tea.NewProgram(
		workbench,
		tea.WithFPS(config.NormalFPS),
	)

	// Pick up config edits while the program runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if updates, err := config.Watch(ctx); err != nil {
		log.Warn("config watcher unavailable", "err", err)
	} else {
		go func() {
			for cfg := range updates {
				p.Send(app.ConfigReloadedMsg{Config: cfg})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	applyLogLevel()

	if err := theme.Initialize(themeName); err != nil {
		return fmt.Errorf("theme init failed: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	return server.Start(ctx, &server.Config{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
	})
}

func printConfigPath() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	configPath, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if err := config.SaveUserConfig(config.DefaultConfig()); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	configPath, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	var sb strings.Builder
	sb.WriteString("# FlexUI Configuration File\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	data, err := toml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Println("Configuration reset to defaults")
	fmt.Printf("  Location: %s\n", configPath)
	return nil
}
