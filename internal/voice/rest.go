package voice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"language-assistant/pkg/speechrest"
)

// FileTranscriber transcribes a recorded WAV or Ogg file through the speech REST API.
type FileTranscriber struct {
	client *speechrest.Client
	path   string
}

var _ Transcriber = (*FileTranscriber)(nil)

// NewFileTranscriber creates a Transcriber that reads audio from path.
func NewFileTranscriber(client *speechrest.Client, path string) *FileTranscriber {
	return &FileTranscriber{client: client, path: path}
}

// Transcribe uploads the file and reports the recognition status.
func (t *FileTranscriber) Transcribe(ctx context.Context) (Transcription, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return Transcription{}, fmt.Errorf("%w: %w", ErrTranscribeFailed, err)
	}
	defer f.Close()

	contentType := speechrest.ContentTypeWAV
	if strings.EqualFold(filepath.Ext(t.path), ".ogg") {
		contentType = speechrest.ContentTypeOgg
	}

	res, err := t.client.Recognize(ctx, f, contentType)
	if err != nil {
		return Transcription{}, fmt.Errorf("%w: %w", ErrTranscribeFailed, err)
	}
	if !res.Recognized() {
		return Transcription{Reason: res.RecognitionStatus}, nil
	}
	return Transcription{Text: res.DisplayText, Recognized: true}, nil
}

// FileSynthesizer renders speech through the REST API and writes it to a file.
type FileSynthesizer struct {
	client *speechrest.Client
	path   string
}

var _ Synthesizer = (*FileSynthesizer)(nil)

// NewFileSynthesizer creates a Synthesizer that writes audio to path.
func NewFileSynthesizer(client *speechrest.Client, path string) *FileSynthesizer {
	return &FileSynthesizer{client: client, path: path}
}

// Speak synthesizes text and saves the audio.
func (s *FileSynthesizer) Speak(ctx context.Context, text string) error {
	audio, err := s.client.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, audio, 0o644); err != nil {
		return fmt.Errorf("failed to write audio to %s: %w", s.path, err)
	}
	return nil
}
