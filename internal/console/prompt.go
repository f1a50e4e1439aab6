package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned by TextPrompt when the answer is empty.
var ErrNoInput = errors.New("no input given")

// Printer is a function compatible with logger.Notice
type Printer func(ctx context.Context, msg any, args ...any)

// TextPrompt writes question to w and reads one line from r.
// The answer is trimmed; an empty answer or end of input returns ErrNoInput
// rather than an empty string, so callers must decide what "no answer" means.
// When r is not a terminal the answer is echoed through printer so logs
// show what was used.
func TextPrompt(ctx context.Context, printer Printer, w io.Writer, r io.Reader, question string) (string, error) {
	fmt.Fprint(w, Parse(question))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	if !IsTerminal(r) {
		fmt.Fprintln(w)
		if printer != nil && answer != "" {
			printer(ctx, "Answered: '{{_Value_}}%s{{|-|}}'", answer)
		}
	}
	if answer == "" {
		return "", ErrNoInput
	}
	return answer, nil
}
