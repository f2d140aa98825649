package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads operator input line by line and writes prompts and reports.
// It is not safe for concurrent use.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out),
	}
}

// Out returns the writer all console output goes to.
func (c *Console) Out() io.Writer {
	return c.out
}

// Say prints its operands separated by spaces, followed by a newline.
func (c *Console) Say(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Sayf prints formatted text followed by a newline.
func (c *Console) Sayf(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

// Write prints text without a trailing newline.
func (c *Console) Write(s string) {
	fmt.Fprint(c.out, s)
}

// Title prints a highlighted heading line.
func (c *Console) Title(s string) {
	fmt.Fprintln(c.out, c.styles.title.Render(s))
}

// Muted prints a de-emphasized line.
func (c *Console) Muted(s string) {
	fmt.Fprintln(c.out, c.styles.muted.Render(s))
}

// Success prints a line reporting a good outcome.
func (c *Console) Success(s string) {
	fmt.Fprintln(c.out, c.styles.success.Render(s))
}

// Warn prints a line that needs the operator's attention.
func (c *Console) Warn(s string) {
	fmt.Fprintln(c.out, c.styles.warning.Render(s))
}

// Error prints a failure report.
func (c *Console) Error(s string) {
	fmt.Fprintln(c.out, c.styles.err.Render(s))
}

// ReadLine blocks until the operator enters a line and returns it without
// the line terminator. A final line without a terminator is returned
// normally; io.EOF is only returned once no input is left.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Ask prints the question and returns the next input line.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	c.Say(question)
	return c.ReadLine(ctx)
}

// Confirm asks a yes/no question. Only an affirmative reply confirms;
// negative and unrecognised replies both decline.
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	reply, err := c.Ask(ctx, question)
	if err != nil {
		return false, err
	}
	return ParseAnswer(reply) == Affirmative, nil
}
