package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/tracwiki-cli/internal/config"
	"github.com/salmonumbrella/tracwiki-cli/internal/output"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage tracwiki-cli configuration file at ~/.config/tracwiki-cli/config.yaml`,
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	cmd.AddCommand(newConfigPathCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current configuration from ~/.config/tracwiki-cli/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}

			// If config is empty, show a helpful message
			if len(data) == 0 || string(data) == "{}\n" {
				path, _ := config.DefaultConfigPath()
				_, _ = fmt.Fprintf(app.Stdout, "No configuration file found at %s\n", path)
				_, _ = fmt.Fprintln(app.Stdout, "\nTo create a config file, use:")
				_, _ = fmt.Fprintln(app.Stdout, "  trc config set output json")
				return nil
			}

			_, _ = fmt.Fprint(app.Stdout, string(data))
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.config/tracwiki-cli/config.yaml

Supported keys:
  output          - Default output format (text, json, yaml)
  color           - Default color mode (auto, always, never)
  preserve_breaks - Keep paragraph line breaks instead of refilling (true, false)

Examples:
  trc config set output json
  trc config set color always
  trc config set preserve_breaks true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			switch key {
			case "output":
				format, err := output.ParseFormat(value)
				if err != nil {
					validFormats := []string{"text", "json", "yaml"}
					return fmt.Errorf("invalid output format %q, must be one of: %s", value, strings.Join(validFormats, ", "))
				}
				cfg.Output = string(format)
				value = cfg.Output
			case "color":
				validModes := []string{"auto", "always", "never"}
				if !contains(validModes, value) {
					return fmt.Errorf("invalid color mode %q, must be one of: %s", value, strings.Join(validModes, ", "))
				}
				cfg.Color = value
			case "preserve_breaks":
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("invalid boolean %q for preserve_breaks", value)
				}
				cfg.PreserveBreaks = b
				value = strconv.FormatBool(b)
			default:
				return fmt.Errorf("unknown config key %q\n\nSupported keys: output, color, preserve_breaks", key)
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.DefaultConfigPath()
			_, _ = fmt.Fprintf(app.Stdout, "Set %s = %s in %s\n", key, value, path)
			return nil
		},
	}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Long:  `Display the path to the configuration file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			_, _ = fmt.Fprintln(app.Stdout, path)

			// Show if file exists
			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintln(app.Stdout, "(file exists)")
			} else if os.IsNotExist(err) {
				_, _ = fmt.Fprintln(app.Stdout, "(file does not exist)")
			}

			return nil
		},
	}
}

// contains checks if a string slice contains a value
func contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
