// Package input contains the command readers the interactive engine gets
// player input from: a readline-backed one for TTY sessions and a direct one
// for any other stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader produces one command line at a time.
type Reader interface {
	// ReadCommand blocks until a line with non-space characters is read and
	// returns it with surrounding whitespace trimmed. At end of input it
	// returns io.EOF.
	ReadCommand() (string, error)

	// Close releases any resources held by the reader.
	Close() error
}

// DirectReader reads commands from any generic input stream directly. It
// does not sanitize the input of control and escape sequences.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader creates a DirectReader with a buffered reader on the
// provided stream.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

func (dr *DirectReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}
	return line, nil
}

// Close exists so DirectReader implements Reader; there is nothing to
// release yet, but callers should treat it as though there were.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader reads commands from stdin through a Go implementation of
// the GNU Readline library. This keeps input clear of typing and editing
// escape sequences and enables command history. Use it only when directly
// connected to a TTY.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader creates an InteractiveReader and initializes readline.
// The returned reader must have Close called on it before disposal to
// properly tear down readline resources.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

func (ir *InteractiveReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}
	return line, nil
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
}

// Close cleans up readline resources.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
