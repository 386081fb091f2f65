package shell

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/koji/internal/domain"
)

type recordingOutput struct {
	mu    sync.Mutex
	lines []string
}

func (o *recordingOutput) add(kind, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, kind+": "+text)
}

func (o *recordingOutput) Println(a ...any) {
	o.add("raw", strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}
func (o *recordingOutput) PrintChat(text string)   { o.add("chat", text) }
func (o *recordingOutput) PrintHeader(text string) { o.add("header", text) }
func (o *recordingOutput) PrintLine(text string)   { o.add("line", text) }
func (o *recordingOutput) PrintHint(text string)   { o.add("hint", text) }
func (o *recordingOutput) PrintUrgent(text string) { o.add("urgent", text) }

func (o *recordingOutput) text() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

func (o *recordingOutput) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = nil
}

type fakeConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (c *fakeConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, c.err
}

type fakeBridge struct {
	handlers []func(string)
	pingErr  error
}

func (b *fakeBridge) Ping(ctx context.Context) (string, error) {
	if b.pingErr != nil {
		return "", b.pingErr
	}
	return "pong from fake", nil
}

func (b *fakeBridge) GetAll(ctx context.Context) ([]any, error) {
	return nil, domain.ErrNotImplemented
}

func (b *fakeBridge) OnMessage(fn func(string)) {
	b.handlers = append(b.handlers, fn)
}

func (b *fakeBridge) send(msg string) {
	for _, fn := range b.handlers {
		fn(msg)
	}
}
