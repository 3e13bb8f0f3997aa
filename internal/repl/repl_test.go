package repl_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"language-assistant/internal/repl"
)

func echo(seen *[]string) repl.Handler {
	return func(ctx context.Context, line string) (string, error) {
		*seen = append(*seen, line)
		return "> " + line, nil
	}
}

func TestLoop_Run(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSeen []string
		wantOut  string
	}{
		{
			name:     "Quit ends the loop",
			input:    "hello\n  QUIT \nnever\n",
			wantSeen: []string{"hello"},
			wantOut:  "? > hello\n? Exiting...\n",
		},
		{
			name:     "Blank lines are skipped",
			input:    "\n   \nwhat time is it\nquit\n",
			wantSeen: []string{"what time is it"},
			wantOut:  "? ? ? > what time is it\n? Exiting...\n",
		},
		{
			name:     "EOF ends cleanly",
			input:    "one\ntwo",
			wantSeen: []string{"one", "two"},
			wantOut:  "? > one\n? > two\n? \n",
		},
		{
			name:    "Empty input",
			input:   "",
			wantOut: "? \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			var seen []string

			err := repl.New(strings.NewReader(tt.input), &out, "? ").Run(context.Background(), echo(&seen))

			require.NoError(t, err)
			assert.Equal(t, tt.wantSeen, seen)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestLoop_Run_HandlerError(t *testing.T) {
	boom := errors.New("service unavailable")
	calls := 0
	h := func(ctx context.Context, line string) (string, error) {
		calls++
		return "", boom
	}

	err := repl.New(strings.NewReader("a\nb\n"), io.Discard, "").Run(context.Background(), h)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestLoop_Run_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- repl.New(pr, io.Discard, "").Run(ctx, func(context.Context, string) (string, error) {
			return "", nil
		})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
}
