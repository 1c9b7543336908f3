package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; runs from all sessions are
recorded in the same shared history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Environment variables (a .env file next to the binary is loaded too):
  SNAKE_SSH_ADDR  - Listen address, used when --ssh is not given
  SNAKE_DB        - Database path, used when --db is not given
  SNAKE_HOST_KEY  - Host key path, used when --host-key is not given

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.snake/runs.db", "Path to run history database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// envOverride returns the env value when the flag was left at its
// default and the variable is set.
func envOverride(cmd *cobra.Command, flagName, envName, current string) string {
	if cmd.Flags().Changed(flagName) {
		return current
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return current
}

func runServe(cmd *cobra.Command, _ []string) {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
	}

	sshCfg := tui.SSHServerConfig{
		Address:     envOverride(cmd, "ssh", "SNAKE_SSH_ADDR", flagSSHAddr),
		HostKeyPath: envOverride(cmd, "host-key", "SNAKE_HOST_KEY", flagHostKey),
		DBPath:      envOverride(cmd, "db", "SNAKE_DB", flagSSHDBPath),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	// Served sessions use the standard config cascade
	gameCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(sshCfg, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting snake SSH server on %s\n", sshCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
