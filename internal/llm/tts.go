/**
* Name:        tts.go
* Description: Google Text-to-Speech for reading diet plans aloud
* Workflow:    synthesize a stored reply into MP3
 */

package llm

import (
	"context"
	"errors"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

type Narrator struct {
	client       *texttospeech.Client
	languageCode string
	voiceName    string
}

func NewNarrator(ctx context.Context, credentialsFile, languageCode, voiceName string) (*Narrator, error) {
	if credentialsFile == "" {
		return nil, errors.New("NewNarrator(): credentials file is not set")
	}
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewNarrator(): failed to create TTS client: %w", err)
	}
	return &Narrator{client: client, languageCode: languageCode, voiceName: voiceName}, nil
}

// Synthesize returns MP3 audio for text.
func (n *Narrator) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("Synthesize(): empty text")
	}

	resp, err := n.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: n.languageCode,
			Name:         n.voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Synthesize(): SynthesizeSpeech failed: %w", err)
	}
	return resp.AudioContent, nil
}

func (n *Narrator) Close() error {
	if n.client != nil {
		return n.client.Close()
	}
	return nil
}
