// internal/terminal/prompt.go
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Prompter asks for whole numbers on a line-oriented input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// RequestInteger prints the prompt and reads lines until one parses as a
// non-negative integer. It only fails when the input itself fails, e.g. io.EOF.
func (p *Prompter) RequestInteger(prompt string) (int, error) {
	for {
		fmt.Fprintln(p.out, prompt)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		text := strings.TrimSpace(line)
		if text == "" && err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(text)
		if perr == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprint(p.out, pterm.Error.Sprintln("Failed to parse number"))
		if err != nil {
			return 0, err
		}
	}
}
