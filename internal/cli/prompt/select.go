// Package prompt provides line-based CLI prompts for when no terminal UI is
// available.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
)

// Sentinel errors for editor selection.
var (
	ErrNoEditors          = errors.New("no editors to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles numbered selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stderr.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stderr,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectEditor prompts the user to choose one of variants by number.
//
// Returns:
//   - ErrNoEditors if the list is empty
//   - The only variant without prompting when there is exactly one
//   - The first variant on empty input
//   - ErrInvalidSelection if the input is not a number in range
//   - ErrSelectionCancelled on EOF (e.g., Ctrl+D)
func (s *Selector) SelectEditor(variants []editor.Variant) (editor.Variant, error) {
	if len(variants) == 0 {
		return "", ErrNoEditors
	}

	if len(variants) == 1 {
		return variants[0], nil
	}

	fmt.Fprintln(s.writer, "Editors:")
	for i, v := range variants {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, v.DisplayName())
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return variants[0], nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(variants) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(variants))
	}

	return variants[selection-1], nil
}
