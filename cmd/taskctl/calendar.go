package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"personal-task-management/config"
	"personal-task-management/pkg/gcalendar"
)

// calendarAuthCmd runs the one-time OAuth consent for desktop-app
// credentials and stores the token where the calendar mirror reads it.
func calendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			gc := cfg.GoogleCalendar
			if gc.CredentialsPath == "" {
				return fmt.Errorf("google_calendar.credentials_path is not configured")
			}

			data, err := os.ReadFile(gc.CredentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", gc.CredentialsPath, err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			w := cmd.ErrOrStderr()
			fmt.Fprintln(w, "Open this URL, sign in, and paste the authorization code:")
			fmt.Fprintln(w)
			fmt.Fprintln(w, oauthCfg.AuthCodeURL("taskctl", oauth2.AccessTypeOffline))
			fmt.Fprintln(w)
			fmt.Fprint(w, "Code: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code entered: %v", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(gc.TokenPath, tok); err != nil {
				return err
			}
			fmt.Fprintf(w, "Token saved to %s\n", gc.TokenPath)
			return nil
		},
	}
}
