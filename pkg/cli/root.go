// Package cli implements the registry command-line client.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultHost = "http://localhost:8080"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = PrintJSON(os.Stdout, map[string]interface{}{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// rootOptions carries the resolved global flags down to subcommands.
type rootOptions struct {
	host    string
	token   string
	output  string
	profile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "registry",
		Short:         "Sheet Registry CLI",
		Long:          "Command-line interface for the spreadsheet-backed registry API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional.
				cfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
			}
			p := cfg.ActiveProfile(opts.profile)

			// Precedence: flag > env > profile > default.
			resolve := func(f *pflag.Flag, env, profileVal, fallback string, dst *string) {
				if f.Changed {
					return
				}
				if v := os.Getenv(env); v != "" {
					*dst = v
				} else if profileVal != "" {
					*dst = profileVal
				} else if fallback != "" {
					*dst = fallback
				}
			}
			flags := cmd.Flags()
			resolve(flags.Lookup("host"), "REGISTRY_HOST", p.Host, defaultHost, &opts.host)
			resolve(flags.Lookup("token"), "REGISTRY_TOKEN", p.Token, "", &opts.token)
			resolve(flags.Lookup("output"), "REGISTRY_OUTPUT", p.Output, "table", &opts.output)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.host, "host", defaultHost, "API host")
	pf.StringVar(&opts.token, "token", "", "session credential (from 'registry login')")
	pf.StringVar(&opts.output, "output", "table", "output format: table or json")
	pf.StringVar(&opts.profile, "profile", "", "config profile to use")

	rootCmd.AddCommand(newLoginCmd(opts))
	rootCmd.AddCommand(newRecordsCmd(opts))

	return rootCmd
}
