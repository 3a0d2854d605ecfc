package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// maxTokenLen bounds a single input word. Longer words are skipped
// and reported as invalid input.
const maxTokenLen = 4096

// Prompter reads whitespace-delimited tokens and re-prompts on invalid ones.
// Only the offending token is discarded, the rest of the input stays queued.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer

	skipping bool // discarding the rest of an over-long word
	tooLong  bool // last token returned was an over-long word
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out}
	p.scanner = bufio.NewScanner(in)
	p.scanner.Buffer(make([]byte, 0, maxTokenLen), bufio.MaxScanTokenSize)
	p.scanner.Split(p.splitWords)
	return p
}

// splitWords behaves like bufio.ScanWords but never lets a word reach the
// scanner's buffer limit: a word of maxTokenLen bytes or more is consumed
// chunk by chunk and surfaces as a single empty token with tooLong set.
func (p *Prompter) splitWords(data []byte, atEOF bool) (int, []byte, error) {
	if p.skipping {
		i := bytes.IndexFunc(data, unicode.IsSpace)
		if i < 0 && !atEOF {
			return len(data), nil, nil
		}
		if i < 0 {
			i = len(data)
		}
		p.skipping = false
		p.tooLong = true
		return i, []byte{}, nil
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil || token != nil || atEOF {
		return advance, token, err
	}
	if len(data)-advance >= maxTokenLen {
		p.skipping = true
		return len(data), nil, nil
	}
	return advance, nil, nil
}

// next returns io.EOF once the input is exhausted and
// ErrInvalidInput for a word that was too long to read
func (p *Prompter) next() (string, error) {
	if p.scanner.Scan() {
		if p.tooLong {
			p.tooLong = false
			return "", fmt.Errorf("%w: word longer than %d bytes", ErrInvalidInput, maxTokenLen)
		}
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

// Int prompts until an integer token is read
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		tok, err := p.next()
		if err != nil && !errors.Is(err, ErrInvalidInput) {
			return 0, err
		}
		if err == nil {
			n, err := parseInt(tok)
			if err == nil {
				return n, nil
			}
		}
		fmt.Fprintln(p.out, "Invalid input! Please enter a number.")
	}
}

// YesNo prompts until one of Y, y, N or n is read
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		fmt.Fprint(p.out, prompt)
		tok, err := p.next()
		if err != nil && !errors.Is(err, ErrInvalidInput) {
			return false, err
		}
		if err == nil {
			yes, err := parseYesNo(tok)
			if err == nil {
				return yes, nil
			}
		}
		fmt.Fprintln(p.out, "Invalid choice! Please enter Y or N.")
	}
}

func parseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, tok)
	}
	return n, nil
}

func parseYesNo(tok string) (bool, error) {
	switch tok {
	case "Y", "y":
		return true, nil
	case "N", "n":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not Y or N", ErrInvalidInput, tok)
}
