// Package input reads REPL lines for cmd/gramrepl, either directly from a
// plain reader or interactively via GNU Readline. Adapted from
// dekarrin/tunaq's internal/input, generalized from reading TunaQuest player
// commands to reading the grammar text and parse-input lines cmd/gramrepl
// accepts.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectReader reads lines from any io.Reader directly; it does not
// sanitize control or escape sequences. Used when stdin is not a tty.
//
// DirectReader should not be constructed directly; use [NewDirectReader].
type DirectReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveReader reads lines from stdin via GNU Readline, giving line
// editing and history. Should only be used when directly attached to a tty.
//
// InteractiveReader should not be constructed directly; use
// [NewInteractiveReader].
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader wraps r in a buffered reader. The returned DirectReader
// must have Close called on it before disposal.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader initializes readline with the given prompt. The
// returned InteractiveReader must have Close called on it before disposal.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl, prompt: prompt}, nil
}

// Close is a no-op; present so DirectReader matches InteractiveReader's
// lifecycle.
func (dr *DirectReader) Close() error {
	return nil
}

// Close tears down the underlying readline instance.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadLine reads the next line from the wrapped reader. The returned string
// will only be empty if there is an error reading input; otherwise this
// function blocks until a line containing non-space characters is read
// (unless AllowBlank was set).
//
// At end of input, the returned string is empty and error is io.EOF. Any
// other error is returned as-is.
func (dr *DirectReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadLine reads the next line from stdin via readline. Blocking and EOF
// behavior matches DirectReader.ReadLine.
func (ir *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && ir.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// AllowBlank sets whether a blank line is returned as-is rather than
// skipped. By default it is not.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether a blank line is returned as-is rather than
// skipped. By default it is not.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.prompt = p
	ir.rl.SetPrompt(p)
}

// GetPrompt returns the current prompt.
func (ir *InteractiveReader) GetPrompt() string {
	return ir.prompt
}
