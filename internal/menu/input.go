package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedInput is returned when a numeric prompt receives text that is
// not a number. The menu does not recover from it.
var ErrMalformedInput = errors.New("malformed numeric input")

// prompter writes prompts and reads the answers one line at a time.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readLine returns the next line without surrounding whitespace, or io.EOF.
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// readToken is readLine that skips blank lines, as numeric prompts do.
func (p *prompter) readToken(prompt string) (string, error) {
	line, err := p.readLine(prompt)
	for err == nil && line == "" {
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", io.EOF
		}
		line = strings.TrimSpace(p.scanner.Text())
	}
	return line, err
}

func (p *prompter) readInt(prompt string) (int, error) {
	token, err := p.readToken(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, token)
	}
	return n, nil
}

func (p *prompter) readAmount(prompt string) (decimal.Decimal, error) {
	token, err := p.readToken(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, token)
	}
	return amount, nil
}
