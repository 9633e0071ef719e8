package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raphi011/loco-pilot/internal/config"
	"github.com/raphi011/loco-pilot/internal/log"
	"github.com/raphi011/loco-pilot/internal/output"
)

var configFormats = []string{"text", "json", "yaml"}

func newConfigCmd(a *app) *cobra.Command {
	var (
		format   string
		showPath bool
	)

	cmd := &cobra.Command{
		Use:     "config [key] [value]",
		Short:   "Show or change prompt settings",
		Aliases: []string{"cfg"},
		Args:    cobra.MaximumNArgs(2),
		Long: `Show or change prompt settings.

Without arguments the current configuration is printed. With a key the
key's value is printed. With a key and a value the setting is changed and
saved immediately.

Keys: style, show_git, color.username, color.hostname, color.directory,
color.git_branch, color.git_dirty, color.time`,
		Example: `  loco-pilot config                        # Show configuration
  loco-pilot config --format yaml          # Show as YAML
  loco-pilot config --path                 # Show the config file location
  loco-pilot config style info             # Set default style
  loco-pilot config show_git false         # Hide git segment
  loco-pilot config color.git_branch bold_magenta`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.Keys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if showPath {
				if a.store.Path() == "" {
					l.Println("Could not determine config directory")
					return nil
				}
				out.Println(a.store.Path())
				return nil
			}

			switch len(args) {
			case 0:
				return printConfig(out, a.store.Load(ctx), format)
			case 1:
				v, err := a.store.Load(ctx).Get(args[0])
				if err != nil {
					l.Printf("Unknown configuration key: %s\n", args[0])
					return nil
				}
				out.Println(v)
				return nil
			}

			key, value := args[0], args[1]
			cfg, err := a.store.Set(ctx, key, value)
			if errors.Is(err, config.ErrUnknownKey) {
				l.Printf("Unknown configuration key: %s\n", key)
				return nil
			}
			out.Println(config.Confirmation(key, cfg))
			if err != nil {
				l.Printf("Failed to save configuration: %v\n", err)
				return nil
			}
			out.Println("Configuration saved successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&showPath, "path", false, "Print the config file location")
	cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return configFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func printConfig(out *output.Printer, cfg config.Config, format string) error {
	switch format {
	case "text":
		out.Println("Current configuration:")
		for _, k := range config.Keys() {
			v, _ := cfg.Get(k)
			out.Printf("  %s = %s\n", k, v)
		}
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		out.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		out.Print(string(data))
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, configFormats)
	}
	return nil
}
