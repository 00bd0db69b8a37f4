package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hy4ri/basiclist-tui/internal/config"
)

const configTemplate = `# basiclist configuration
# Location: ~/.config/basiclist/config.yaml

store:
  # memory, file, http or mysql
  backend: memory
  # Demo rows created for an empty store
  seed: 5
  # file: ~/.local/share/basiclist/tasks.yaml
  # base_url: https://example.com
  # api_token: ""   # prefer 'basiclist token set'
  # dsn: user:pass@tcp(127.0.0.1:3306)/basiclist

ui:
  page_size: 5
  total: 50
  notifications: false
  owners:
    - 付晓晓
    - 周毛毛
    - 周勇
  labels:
    delete_title: Delete task
    delete_content: Are you sure you want to delete this task?
    confirm: Confirm
    cancel: Cancel
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the API token used by the http backend",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the API token in the system keyring",
	Long: `Stores the API token in the system keyring, or in a private
credentials file when no keyring is available. Without an argument the
token is read from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenSet,
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.ClearToken(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Token removed.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "basiclist version %s\n", version)
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	initCmd.Flags().Bool("full", false, "write every default value instead of the commented template")
	tokenCmd.AddCommand(tokenSetCmd, tokenClearCmd)
	rootCmd.AddCommand(initCmd, tokenCmd, versionCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := flagConfig
	if path == "" {
		var err error
		if path, err = config.ConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	full, _ := cmd.Flags().GetBool("full")
	switch {
	case full && flagConfig == "":
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
	case full:
		if err := config.SaveFile(path, config.DefaultConfig()); err != nil {
			return err
		}
	default:
		if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}

func runTokenSet(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "API token: ")
		t, err := readToken(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = t
	}

	if err := config.SaveToken(token); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Token saved.")
	return nil
}

// readToken reads one line from in. A terminal gets a prompt without echo.
func readToken(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
