package cli

import (
	"context"
	"fmt"
	"io"
)

// Run listens once and prints what was heard and what was said back.
func (h *handler) Run(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Ready to use speech service in:", h.region)
	fmt.Fprintln(w, "Speak now...")

	out, err := h.uc.Run(ctx)
	if err != nil {
		return err
	}

	if !out.Recognized {
		fmt.Fprintln(w, "Speech Recognition Failed:", out.Reason)
		if out.CancellationReason != "" {
			fmt.Fprintln(w, "Cancellation Reason:", out.CancellationReason)
			fmt.Fprintln(w, "Error Details:", out.Details)
		}
		return nil
	}
	fmt.Fprintln(w, "Recognized Command:", out.Command)

	if !out.Handled {
		h.l.Infof(ctx, "Run: no response for command %q", out.Command)
		return nil
	}
	if out.SpeakFailed != "" {
		fmt.Fprintln(w, "Speech Synthesis Failed:", out.SpeakFailed)
	}
	fmt.Fprintln(w, out.Response)
	return nil
}
