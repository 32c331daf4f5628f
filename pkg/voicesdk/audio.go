package voicesdk

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidAudioURL is returned by DecodeAudio for anything other than a
// base64 data URL.
var ErrInvalidAudioURL = errors.New("voicesdk: audio_url is not a base64 data URL")

// DecodeAudio splits a data URL such as "data:audio/mpeg;base64,..." into its
// media type and decoded bytes.
func DecodeAudio(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrInvalidAudioURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidAudioURL
	}

	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrInvalidAudioURL
	}
	if mediaType == "" {
		mediaType = "text/plain"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidAudioURL, err)
	}
	return mediaType, data, nil
}

var audioExtensions = map[string]string{
	"audio/mpeg":  ".mp3",
	"audio/mp3":   ".mp3",
	"audio/wav":   ".wav",
	"audio/wave":  ".wav",
	"audio/x-wav": ".wav",
	"audio/ogg":   ".ogg",
	"audio/webm":  ".webm",
	"audio/flac":  ".flac",
}

// AudioExtension returns the file extension for an audio media type, or
// ".bin" when unknown.
func AudioExtension(mediaType string) string {
	if ext, ok := audioExtensions[strings.ToLower(mediaType)]; ok {
		return ext
	}
	return ".bin"
}
