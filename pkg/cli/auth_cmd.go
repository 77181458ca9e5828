package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newLoginCmd exchanges a Google ID token for a session credential and
// stores it in the active profile.
func newLoginCmd(opts *rootOptions) *cobra.Command {
	var idToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a Google ID token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if idToken == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Google ID token: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read token: %w", err)
				}
				idToken = string(raw)
			}
			if idToken == "" {
				return fmt.Errorf("an ID token is required (--id-token or prompt)")
			}

			client := NewClient(opts.host, "")
			result, err := client.Login(cmd.Context(), idToken)
			if err != nil {
				return err
			}

			// Persist the session credential for subsequent commands.
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
			}
			name := cfg.CurrentProfile
			if opts.profile != "" {
				name = opts.profile
			}
			if name == "" {
				name = "default"
				cfg.CurrentProfile = name
			}
			p := cfg.Profiles[name]
			p.Host = opts.host
			p.Token = result.Token
			cfg.Profiles[name] = p
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}

			if opts.output == "json" {
				return PrintJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", result.User.Name, result.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&idToken, "id-token", "", "Google ID token (prompted when omitted)")
	return cmd
}
