package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
	"github.com/spf13/cobra"
)

func generateCmd(opts *options) *cobra.Command {
	var (
		provider string
		voiceID  string
		modelID  string
		language string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Synthesize speech and save it to a file",
		Long: `Synthesize speech from text and write the audio to a file.

Examples:
  voicectl generate "Hello there"
  voicectl generate --provider cartesia --voice <id> --out hello.wav "Hello there"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProvider(provider); err != nil {
				return err
			}
			text := strings.Join(args, " ")

			return withSession(cmd.Context(), opts, func(s *voicesdk.Session) error {
				var (
					resp *voicesdk.GenerateResponse
					err  error
				)
				switch provider {
				case providerCartesia:
					resp, err = s.CartesiaGenerate(cmd.Context(), voicesdk.CartesiaGenerateRequest{
						Text:     text,
						VoiceID:  voiceID,
						ModelID:  modelID,
						Language: language,
					})
				default:
					resp, err = s.GenerateSpeech(cmd.Context(), voicesdk.GenerateRequest{
						Text:     text,
						VoiceID:  voiceID,
						ModelID:  modelID,
						Language: language,
					})
				}
				if err != nil {
					return err
				}

				mediaType, audio, err := voicesdk.DecodeAudio(resp.AudioURL)
				if err != nil {
					return err
				}

				path := out
				if path == "" {
					path = "speech-" + resp.RequestID + voicesdk.AudioExtension(mediaType)
				}
				if err := os.WriteFile(path, audio, 0o644); err != nil {
					return fmt.Errorf("write audio: %w", err)
				}

				success(cmd.OutOrStdout(), "Wrote %d bytes of %s to %s", len(audio), mediaType, path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&provider, "provider", providerElevenLabs, "voice provider (elevenlabs or cartesia)")
	cmd.Flags().StringVar(&voiceID, "voice", "", "voice ID (provider default when empty)")
	cmd.Flags().StringVar(&modelID, "model", "", "model ID (provider default when empty)")
	cmd.Flags().StringVar(&language, "language", "", "language code")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default speech-<request id>.<ext>)")

	return cmd
}
