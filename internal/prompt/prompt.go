// Package prompt asks the scaffolding questions on a line-oriented terminal
// using numbered menus.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crxgen-labs/crxgen/internal/answers"
)

// Fallback answers when no default is supplied.
const (
	DefaultName        = "myChromeApp"
	DefaultDescription = "My Chrome Extension"
)

// Catalog is the permission list offered in the last question.
type Catalog interface {
	Names() []string
	Label(name string) string
}

// Defaults pre-fills the free-text questions.
type Defaults struct {
	Name        string
	Description string
}

// uiFeatureLabels follows the order of answers.UIFeatures.
var uiFeatureLabels = map[string]string{
	answers.FeatureOptions:       "Options Page",
	answers.FeatureContentScript: "Content Scripts",
	answers.FeatureOmnibox:       "Omnibox",
}

// Run asks for the extension name, description, action, UI features and
// permissions. Blank answers take the defaults; blank multi-selections mean
// none. The result still has to go through answers.Normalize.
func Run(r io.Reader, w io.Writer, catalog Catalog, defaults Defaults) (*answers.RawAnswers, error) {
	reader := bufio.NewReader(r)

	if defaults.Name == "" {
		defaults.Name = DefaultName
	}
	if defaults.Description == "" {
		defaults.Description = DefaultDescription
	}

	name, err := ask(reader, w, "What would you like to call this extension?", defaults.Name)
	if err != nil {
		return nil, err
	}
	description, err := ask(reader, w, "How would you like to describe this extension?", defaults.Description)
	if err != nil {
		return nil, err
	}

	actionIdx, err := selectFromList(reader, w, "Would you like to use UI Action?", answers.ActionChoices, 0)
	if err != nil {
		return nil, err
	}

	featureLabels := make([]string, len(answers.UIFeatures))
	for i, f := range answers.UIFeatures {
		featureLabels[i] = uiFeatureLabels[f]
	}
	featureIdx, err := selectMany(reader, w, "Would you like more UI Features?", featureLabels)
	if err != nil {
		return nil, err
	}

	names := catalog.Names()
	permLabels := make([]string, len(names))
	for i, n := range names {
		permLabels[i] = n
		if label := catalog.Label(n); label != n {
			permLabels[i] = fmt.Sprintf("%s (%s)", n, label)
		}
	}
	permIdx, err := selectMany(reader, w, "Would you like to use permissions?", permLabels)
	if err != nil {
		return nil, err
	}

	raw := &answers.RawAnswers{
		Name:        name,
		Description: description,
		Action:      answers.ActionChoices[actionIdx],
	}
	for _, i := range featureIdx {
		raw.UIFeatures = append(raw.UIFeatures, answers.UIFeatures[i])
	}
	for _, i := range permIdx {
		raw.Permissions = append(raw.Permissions, names[i])
	}
	return raw, nil
}

// readLine reads one line. End of input counts as a blank answer.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ask reads a free-text answer, returning def when the answer is blank.
func ask(reader *bufio.Reader, w io.Writer, question, def string) (string, error) {
	fmt.Fprintf(w, "\n%s (%s): ", question, def)
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// selectFromList presents a numbered list and returns the selected index.
// A blank answer selects def.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string, def int) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d] (%d): ", len(items), def+1)

	line, err := readLine(reader)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// selectMany presents a numbered list and returns the selected indices in
// list order. Numbers are separated by commas or spaces; blank means none.
func selectMany(reader *bufio.Reader, w io.Writer, prompt string, items []string) ([]int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter numbers separated by commas, blank for none: ")

	line, err := readLine(reader)
	if err != nil {
		return nil, err
	}
	return parseSelection(line, len(items))
}

// parseSelection turns "3, 1 3" into [0 2] for a list of n items.
func parseSelection(line string, n int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })

	chosen := make([]bool, n)
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil || num < 1 || num > n {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", f, n)
		}
		chosen[num-1] = true
	}

	var out []int
	for i, ok := range chosen {
		if ok {
			out = append(out, i)
		}
	}
	return out, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
