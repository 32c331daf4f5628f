package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options are the persistent flags shared by every command.
type options struct {
	url      string
	username string
	password string
	asJSON   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "voicectl",
		Short: "Command line client for the VoiceLab gateway",
		Long: `voicectl talks to a VoiceLab gateway the same way the web UI does:
it signs in, keeps the session cookie for the duration of the command,
and signs out again when it is done.

Credentials can be passed as flags or through the environment:

  VOICELAB_URL        gateway base URL (default http://localhost:3000)
  VOICELAB_USERNAME   account username
  VOICELAB_PASSWORD   account password`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.url, "url", envOrDefault("VOICELAB_URL", "http://localhost:3000"), "gateway base URL")
	flags.StringVarP(&opts.username, "username", "u", os.Getenv("VOICELAB_USERNAME"), "account username")
	flags.StringVarP(&opts.password, "password", "p", os.Getenv("VOICELAB_PASSWORD"), "account password")
	flags.BoolVar(&opts.asJSON, "json", false, "print raw JSON")

	rootCmd.AddCommand(
		whoamiCmd(opts),
		voicesCmd(opts),
		modelsCmd(opts),
		languagesCmd(opts),
		historyCmd(opts),
		generateCmd(opts),
		sttCmd(opts),
		healthCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// withSession signs in, runs fn and signs out.
func withSession(ctx context.Context, opts *options, fn func(*voicesdk.Session) error) error {
	if opts.username == "" || opts.password == "" {
		return errors.New("credentials required: set --username and --password or VOICELAB_USERNAME and VOICELAB_PASSWORD")
	}

	session := voicesdk.NewSession(voicesdk.NewClient(opts.url))
	if res := session.Login(ctx, opts.username, opts.password); !res.Success {
		return fmt.Errorf("login failed: %s", res.Error)
	}
	defer session.Logout(ctx)

	return fn(session)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
