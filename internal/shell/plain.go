package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Compile-time interface check.
var _ Output = (*PlainOutput)(nil)

// PlainOutput writes colored lines to a writer. Used when the Bubble Tea
// display is off. fatih/color drops the escapes when stdout is not a TTY.
type PlainOutput struct {
	mu     sync.Mutex
	w      io.Writer
	chat   *color.Color
	header *color.Color
	line   *color.Color
	hint   *color.Color
	urgent *color.Color
}

// NewPlainOutput creates an output writing to w.
func NewPlainOutput(w io.Writer) *PlainOutput {
	return &PlainOutput{
		w:      w,
		chat:   color.New(color.FgCyan),
		header: color.New(color.FgGreen, color.Bold),
		line:   color.New(color.Reset),
		hint:   color.New(color.FgHiBlack),
		urgent: color.New(color.FgRed, color.Bold),
	}
}

func (o *PlainOutput) Println(a ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.w, a...)
}

func (o *PlainOutput) PrintChat(text string)   { o.print(o.chat, text) }
func (o *PlainOutput) PrintHeader(text string) { o.print(o.header, text) }
func (o *PlainOutput) PrintLine(text string)   { o.print(o.line, text) }
func (o *PlainOutput) PrintHint(text string)   { o.print(o.hint, text) }
func (o *PlainOutput) PrintUrgent(text string) { o.print(o.urgent, text) }

func (o *PlainOutput) print(c *color.Color, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	c.Fprintln(o.w, "  "+text)
}

// ReadLines streams lines from r until EOF or ctx is done. The channel is
// closed when reading stops.
func ReadLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
