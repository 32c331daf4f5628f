package voicesdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeAudio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantType  string
		wantData  string
		wantError bool
	}{
		{name: "mpeg", in: "data:audio/mpeg;base64,aGVsbG8=", wantType: "audio/mpeg", wantData: "hello"},
		{name: "wav", in: "data:audio/wav;base64,AAE=", wantType: "audio/wav", wantData: "\x00\x01"},
		{name: "no media type", in: "data:;base64,aGk=", wantType: "text/plain", wantData: "hi"},
		{name: "plain url", in: "https://cdn.example.com/a.mp3", wantError: true},
		{name: "not base64", in: "data:audio/mpeg,hello", wantError: true},
		{name: "no payload separator", in: "data:audio/mpeg;base64", wantError: true},
		{name: "bad payload", in: "data:audio/mpeg;base64,***", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mediaType, data, err := DecodeAudio(tt.in)
			if tt.wantError {
				require.ErrorIs(t, err, ErrInvalidAudioURL)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantType, mediaType)
			require.Equal(t, tt.wantData, string(data))
		})
	}
}

func TestAudioExtension(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".mp3", AudioExtension("audio/mpeg"))
	require.Equal(t, ".wav", AudioExtension("Audio/WAV"))
	require.Equal(t, ".bin", AudioExtension("application/octet-stream"))
}
