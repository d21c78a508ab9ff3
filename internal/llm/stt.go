/**
* Name:        stt.go
* Description: Google Speech-to-Text for spoken chat messages
* Workflow:    pick encoding from content type, recognize, join final transcripts
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

type Transcriber struct {
	client       *speech.Client
	languageCode string
}

func NewTranscriber(ctx context.Context, credentialsFile, languageCode string) (*Transcriber, error) {
	if credentialsFile == "" {
		return nil, errors.New("NewTranscriber(): credentials file is not set")
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewTranscriber(): failed to create speech client: %w", err)
	}
	return &Transcriber{client: client, languageCode: languageCode}, nil
}

// Transcribe recognizes a short recorded clip and returns the text.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("Transcribe(): empty audio")
	}
	encoding, sampleRate := recognitionEncoding(contentType)

	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          encoding,
			SampleRateHertz:   sampleRate,
			AudioChannelCount: 1,
			LanguageCode:      t.languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("Transcribe(): recognize failed: %w", err)
	}

	parts := make([]string, 0, len(resp.Results))
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func (t *Transcriber) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// recognitionEncoding maps an upload's content type to the speech API encoding.
// Sample rate 0 lets the API read it from the container header.
func recognitionEncoding(contentType string) (speechpb.RecognitionConfig_AudioEncoding, int32) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch mediaType {
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS, 48000
	case "audio/ogg":
		return speechpb.RecognitionConfig_OGG_OPUS, 48000
	case "audio/wav", "audio/x-wav", "audio/wave":
		return speechpb.RecognitionConfig_LINEAR16, 0
	case "audio/flac", "audio/x-flac":
		return speechpb.RecognitionConfig_FLAC, 0
	default:
		// raw 16 kHz PCM
		return speechpb.RecognitionConfig_LINEAR16, 16000
	}
}
