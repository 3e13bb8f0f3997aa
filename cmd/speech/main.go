package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"language-assistant/config"
	"language-assistant/internal/voice"
	voiceCLI "language-assistant/internal/voice/delivery/cli"
	"language-assistant/internal/voice/device"
	voiceUC "language-assistant/internal/voice/usecase"
	"language-assistant/pkg/datemath"
	"language-assistant/pkg/log"
	"language-assistant/pkg/speechrest"
	"language-assistant/pkg/speechsdk"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	if err := cfg.ValidateSpeech(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Audio input and output
	transcriber, synthesizer, region, err := audioDevices(cfg.Speech)
	if err != nil {
		return err
	}

	// 4. UseCase and delivery
	uc := voiceUC.New(logger, transcriber, synthesizer, datemath.New())
	h := voiceCLI.New(logger, uc, region)

	// 5. Run once
	return h.Run(ctx, os.Stdout)
}

// audioDevices uses the microphone and speaker through the speech SDK unless
// input or output files are configured, which go through the REST API instead.
// The returned region is the one the constructed clients report.
func audioDevices(cfg config.SpeechConfig) (voice.Transcriber, voice.Synthesizer, string, error) {
	var (
		transcriber voice.Transcriber
		synthesizer voice.Synthesizer
		region      string
	)

	if cfg.InputFile != "" || cfg.OutputFile != "" {
		client, err := speechrest.New(speechrest.Config{
			Key:      cfg.Key,
			Region:   cfg.Region,
			Language: cfg.RecognitionLanguage,
			Voice:    cfg.Voice,
		})
		if err != nil {
			return nil, nil, "", err
		}
		region = client.Region()
		if cfg.InputFile != "" {
			transcriber = voice.NewFileTranscriber(client, cfg.InputFile)
		}
		if cfg.OutputFile != "" {
			synthesizer = voice.NewFileSynthesizer(client, cfg.OutputFile)
		}
	}

	sdkCfg := speechsdk.Config{
		Key:                 cfg.Key,
		Region:              cfg.Region,
		RecognitionLanguage: cfg.RecognitionLanguage,
		Voice:               cfg.Voice,
	}
	if transcriber == nil {
		rec, err := speechsdk.NewRecognizer(sdkCfg)
		if err != nil {
			return nil, nil, "", err
		}
		region = rec.Region()
		transcriber = device.NewMicrophoneTranscriber(rec)
	}
	if synthesizer == nil {
		synth, err := speechsdk.NewSynthesizer(sdkCfg)
		if err != nil {
			return nil, nil, "", err
		}
		synthesizer = synth
	}

	return transcriber, synthesizer, region, nil
}
