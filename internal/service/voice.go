package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrVoiceDisabled is returned when no speech backend is configured.
var ErrVoiceDisabled = errors.New("voice features are not configured")

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoiceService puts speech in front of ChatService. It adds no conversation
// state of its own.
type VoiceService struct {
	chat        *ChatService
	transcriber Transcriber
	synthesizer Synthesizer
}

// NewVoiceService accepts nil backends; the matching operation then returns ErrVoiceDisabled.
func NewVoiceService(chat *ChatService, t Transcriber, s Synthesizer) *VoiceService {
	return &VoiceService{chat: chat, transcriber: t, synthesizer: s}
}

// Ask transcribes the audio and submits the text as a chat message.
func (v *VoiceService) Ask(ctx context.Context, userID int64, audio []byte, contentType string) (transcript, reply string, err error) {
	if v.transcriber == nil {
		return "", "", ErrVoiceDisabled
	}

	transcript, err = v.transcriber.Transcribe(ctx, audio, contentType)
	if err != nil {
		return "", "", fmt.Errorf("transcribe: %w", err)
	}
	transcript = strings.TrimSpace(transcript)

	reply, err = v.chat.SubmitMessage(ctx, userID, transcript)
	if err != nil {
		return transcript, "", err
	}
	return transcript, reply, nil
}

// Speak renders a stored reply as audio.
func (v *VoiceService) Speak(ctx context.Context, userID, turnID int64) ([]byte, error) {
	if v.synthesizer == nil {
		return nil, ErrVoiceDisabled
	}

	turn, err := v.chat.GetTurn(ctx, userID, turnID)
	if err != nil {
		return nil, err
	}

	audio, err := v.synthesizer.Synthesize(ctx, turn.Reply)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return audio, nil
}
