package speechrest

import "time"

const (
	// STT and TTS endpoint templates, filled with the resource region
	sttEndpointTmpl = "https://%s.stt.speech.microsoft.com"
	ttsEndpointTmpl = "https://%s.tts.speech.microsoft.com"

	sttPath = "/speech/recognition/conversation/cognitiveservices/v1"
	ttsPath = "/cognitiveservices/v1"

	DefaultLanguage     = "en-US"
	DefaultVoice        = "en-GB-LibbyNeural"
	DefaultOutputFormat = "riff-24khz-16bit-mono-pcm"
	DefaultTimeout      = 10 * time.Second

	// ContentTypeWAV is the content type for 16 kHz mono PCM WAV input
	ContentTypeWAV = "audio/wav; codecs=audio/pcm; samplerate=16000"
	// ContentTypeOgg is the content type for Ogg/Opus input
	ContentTypeOgg = "audio/ogg; codecs=opus"

	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"
	headerOutputFormat    = "X-Microsoft-OutputFormat"
	userAgent             = "language-assistant"

	// StatusSuccess is the RecognitionStatus of a recognised utterance
	StatusSuccess = "Success"
)
