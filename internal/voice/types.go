package voice

const (
	// CommandWhatTime is the only command the speaking clock answers, compared case-insensitively.
	CommandWhatTime = "what time is it?"

	// ResponseTimeTmpl is filled with the local time as H:MM.
	ResponseTimeTmpl = "The time is %s"
)

// Transcription is the result of listening for one utterance.
type Transcription struct {
	Text       string
	Recognized bool
	Reason     string // why nothing was recognised

	CancellationReason string
	Details            string // error details, when cancelled
}

// RunOutput describes what was heard and what was said back.
type RunOutput struct {
	Command    string
	Recognized bool
	Reason     string

	CancellationReason string
	Details            string

	Handled     bool
	Response    string
	SpeakFailed string // synthesis error, the response is still returned
}
