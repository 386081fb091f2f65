package shell

import (
	"context"
	"io"
	"strings"

	"github.com/hammamikhairi/koji/internal/domain"
)

// Compile-time interface check.
var _ domain.Confirmer = (*LineConfirmer)(nil)

// LineConfirmer asks on out and takes the next line from in as the answer.
// It must be called from the goroutine that otherwise consumes in.
type LineConfirmer struct {
	in  <-chan string
	out Output
}

// NewLineConfirmer creates a confirmer reading answers from in.
func NewLineConfirmer(in <-chan string, out Output) *LineConfirmer {
	return &LineConfirmer{in: in, out: out}
}

// Confirm returns true only for "y" or "yes" (any case).
func (c *LineConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.out.PrintChat(prompt + " [y/N]")
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case line, ok := <-c.in:
		if !ok {
			return false, io.EOF
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
