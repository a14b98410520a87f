package survey

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultMaxAttempts bounds how many times a single question is asked.
	DefaultMaxAttempts = 3
	// MaxCount is the largest answer Count accepts.
	MaxCount = 50
)

// Prompter asks line-oriented questions. An empty answer, or end of input,
// selects the question's default. Invalid answers are re-asked at most
// maxAttempts times.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// Float asks for a positive number.
func (p *Prompter) Float(prompt string, def float64) (float64, error) {
	var value float64
	err := p.ask(prompt, func(answer string) bool {
		if answer == "" {
			value = def
			return true
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			p.printf("Please enter a valid positive number.\n")
			return false
		}
		value = v
		return true
	})
	return value, err
}

// Count asks for a whole number between 0 and MaxCount.
func (p *Prompter) Count(prompt string, def int) (int, error) {
	var value int
	err := p.ask(prompt, func(answer string) bool {
		if answer == "" {
			value = def
			return true
		}
		v, err := strconv.Atoi(answer)
		if err != nil || v < 0 || v > MaxCount {
			p.printf("Please enter a whole number from 0 to %d.\n", MaxCount)
			return false
		}
		value = v
		return true
	})
	return value, err
}

// Choice asks for one of options. Answers are matched exactly; after an
// invalid answer the options are listed again.
func (p *Prompter) Choice(prompt, def string, options []string) (string, error) {
	var value string
	err := p.ask(prompt, func(answer string) bool {
		if answer == "" {
			answer = def
		}
		for _, option := range options {
			if option == answer {
				value = answer
				return true
			}
		}
		p.printf("%q is not a known option. Choose one of:\n", answer)
		p.List(options)
		return false
	})
	return value, err
}

// List prints options as a bulleted list.
func (p *Prompter) List(options []string) {
	for _, option := range options {
		p.printf("- %s\n", option)
	}
}

func (p *Prompter) ask(prompt string, accept func(answer string) bool) error {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		p.printf("%s", prompt)

		answer, err := p.readLine()
		if err != nil {
			return err
		}

		if accept(answer) {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts: %s", ErrTooManyAttempts, p.maxAttempts, strings.TrimSpace(prompt))
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if errors.Is(err, io.EOF) {
		// End the prompt line when input is piped.
		p.printf("\n")
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
