package screens

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Terminal wraps the reader/writer pair the screens talk through. Tests
// feed it a scripted reader and inspect the writer.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// EOF reports whether the input has run dry; prompt loops stop retrying
// once it has.
func (t *Terminal) EOF() bool { return t.eof }

func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// ReadLine returns the next input line, empty at EOF.
func (t *Terminal) ReadLine() string {
	if !t.in.Scan() {
		t.eof = true
		return ""
	}
	return strings.TrimSpace(t.in.Text())
}

func (t *Terminal) Prompt(label string) string {
	t.Printf("%s: ", label)
	return t.ReadLine()
}

// PromptBool accepts y/yes (any case) as true.
func (t *Terminal) PromptBool(label string) bool {
	answer := strings.ToLower(t.Prompt(label + " [y/N]"))
	return answer == "y" || answer == "yes"
}

// PromptChoice shows numbered options and returns the chosen value, or ""
// when the input matches nothing.
func (t *Terminal) PromptChoice(label string, options []string) string {
	t.Println(label + ":")
	for i, option := range options {
		t.Printf("  %d) %s\n", i+1, option)
	}
	answer := t.Prompt("Choice")
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	for _, option := range options {
		if strings.EqualFold(answer, option) {
			return option
		}
	}
	return answer
}

// PromptMulti reads a comma-separated subset of the options.
func (t *Terminal) PromptMulti(label string, options []string) []string {
	t.Println(label + " (comma-separated, empty for none):")
	for i, option := range options {
		t.Printf("  %d) %s\n", i+1, option)
	}
	answer := t.Prompt("Selection")
	if answer == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil && n >= 1 && n <= len(options) {
			out = append(out, options[n-1])
			continue
		}
		matched := part
		for _, option := range options {
			if strings.EqualFold(part, option) {
				matched = option
				break
			}
		}
		out = append(out, matched)
	}
	return out
}
