// Package picker implements the console menu and pause used in interactive
// mode on top of promptui.
package picker

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// ErrNoItems is returned when there is nothing to choose from.
var ErrNoItems = errors.New("no items to choose from")

// maxVisible caps how many entries the menu shows at once.
const maxVisible = 10

// Picker asks questions on in/out.
type Picker struct {
	in  io.ReadCloser
	out io.WriteCloser

	runSelect func(*promptui.Select) (int, string, error)
	runPrompt func(*promptui.Prompt) (string, error)
}

// New creates a Picker. Neither in nor out is closed by the Picker.
func New(in io.Reader, out io.Writer) *Picker {
	return &Picker{
		in:        io.NopCloser(in),
		out:       nopWriteCloser{out},
		runSelect: (*promptui.Select).Run,
		runPrompt: (*promptui.Prompt).Run,
	}
}

// Select shows items as a menu with the cursor on def and returns the
// zero-based index picked by the user. It fails when the user aborts or
// input ends.
func (p *Picker) Select(label string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}
	if def < 0 || def >= len(items) {
		def = 0
	}

	index, _, err := p.runSelect(p.newSelect(label, items, def))
	if err != nil {
		return 0, fmt.Errorf("no selection made: %w", err)
	}
	return index, nil
}

// WaitForEnter shows message and blocks until Enter is pressed or input
// ends.
func (p *Picker) WaitForEnter(message string) {
	_, _ = p.runPrompt(p.newPause(message))
}

func (p *Picker) newSelect(label string, items []string, def int) *promptui.Select {
	return &promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: def,
		Size:      min(len(items), maxVisible),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . | bold }}",
			Active:   "> {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "{{ . | green }}",
		},
		Stdin:  p.in,
		Stdout: p.out,
	}
}

func (p *Picker) newPause(message string) *promptui.Prompt {
	tpl := "{{ . | cyan }} "
	return &promptui.Prompt{
		Label: message,
		Templates: &promptui.PromptTemplates{
			Prompt:  tpl,
			Valid:   tpl,
			Invalid: tpl,
			Success: tpl,
		},
		Stdin:  p.in,
		Stdout: p.out,
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
