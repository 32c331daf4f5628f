package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
	"github.com/spf13/cobra"
)

const (
	providerElevenLabs = "elevenlabs"
	providerCartesia   = "cartesia"
)

func validateProvider(p string) error {
	switch p {
	case providerElevenLabs, providerCartesia:
		return nil
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", p, providerElevenLabs, providerCartesia)
	}
}

func whoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Sign in and print the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				u := s.User()
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), u)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", u.Username, u.ID)
				return nil
			})
		},
	}
}

func voicesCmd(opts *options) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List available voices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProvider(provider); err != nil {
				return err
			}

			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				list := s.Voices
				if provider == providerCartesia {
					list = s.CartesiaVoices
				}

				voices, err := list(cmd.Context())
				if err != nil {
					return err
				}
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), voices)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tCATEGORY")
				for _, v := range voices {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", v.VoiceID, v.Name, v.Category)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&provider, "provider", providerElevenLabs, "voice provider (elevenlabs or cartesia)")

	return cmd
}

func modelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List Cartesia models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				models, err := s.CartesiaModels(cmd.Context())
				if err != nil {
					return err
				}
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), models)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME")
				for _, m := range models {
					fmt.Fprintf(tw, "%s\t%s\n", m.ID, m.Name)
				}
				return tw.Flush()
			})
		},
	}
}

func languagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List Cartesia languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				languages, err := s.CartesiaLanguages(cmd.Context())
				if err != nil {
					return err
				}
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), languages)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tNAME")
				for _, l := range languages {
					fmt.Fprintf(tw, "%s\t%s\n", l.Code, l.Name)
				}
				return tw.Flush()
			})
		},
	}
}

func historyCmd(opts *options) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				history, err := s.History(cmd.Context(), limit, offset)
				if err != nil {
					return err
				}
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), history)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tCREATED\tTEXT")
				for _, item := range history.Requests {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", item.ID, item.CreatedAt.Format("2006-01-02 15:04"), truncate(item.Text, 48))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d\n", len(history.Requests), history.Total)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of items")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of items to skip")

	return cmd
}

func sttCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stt",
		Short: "Show speech-to-text availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				status, err := s.STTStatus(cmd.Context())
				if err != nil {
					return err
				}
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), status)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", status.Status, status.Message)
				return nil
			})
		},
	}
}

func healthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check gateway readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := voicesdk.NewClient(opts.url)
			health, err := client.GetReadiness(cmd.Context())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), health)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (version %s, up %s)\n", health.Status, health.Version, health.Uptime)
			return nil
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
