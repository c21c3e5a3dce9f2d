// Package pick offers interactive pickers for commands run with -i.
package pick

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

// ErrNoItems is returned when there is nothing to pick from.
var ErrNoItems = errors.New("pick: no items")

// Item prompts for one of items and returns its id.
func Item(cmd *cobra.Command, items []item.Item) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .ID | bold }} {{ .Name | bold }} {{ .Start | green }}",
		Inactive: "   {{ .ID }} {{ .Name }} {{ .Start | cyan }}",
		Selected: "{{ .ID | bold }} {{ .Name }}",
		Details: `
--------- Item ----------
{{ "Start:" | faint }}	{{ .Start }}
{{ "End:" | faint }}	{{ .End }}
{{ "Category:" | faint }}	{{ .Category }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Item",
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  itemSearcher(items),
		Stdin:     ioutil.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("pick: %w", err)
	}
	return items[i].ID, nil
}

func itemSearcher(items []item.Item) func(string, int) bool {
	return func(input string, index int) bool {
		it := items[index]
		if id, err := strconv.Atoi(strings.TrimSpace(input)); err == nil && id == it.ID {
			return true
		}
		name := strings.Replace(strings.ToLower(it.Name+it.Category.String()), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}
}

// choice is one row of the category toggle list.
type choice struct {
	Label  string
	Color  string
	Mark   string
	Done   bool
	target category.Category
}

func choices(selected category.Set) []choice {
	palette := category.Palette()
	out := make([]choice, 0, len(palette)+1)
	for _, m := range palette {
		mark := "[ ]"
		if selected.Has(m.Key) {
			mark = "[x]"
		}
		out = append(out, choice{Label: m.Label, Color: m.Color, Mark: mark, target: m.Key})
	}
	return append(out, choice{Label: "Done", Done: true})
}

// Categories prompts the user to toggle categories on and off until Done is
// picked. An empty result means every category.
func Categories(cmd *cobra.Command, active []category.Category) ([]category.Category, error) {
	selected := category.NewSet(active...)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }}?",
		Active:   "➜ {{ if .Done }}{{ .Label | bold | green }}{{ else }}{{ .Mark }} {{ .Label | bold }} {{ .Color | faint }}{{ end }}",
		Inactive: "  {{ if .Done }}{{ .Label | faint | green }}{{ else }}{{ .Mark }} {{ .Label }}{{ end }}",
		Selected: "{{ .Label | bold }}",
	}

	cursor := 0
	for {
		items := choices(selected)
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     "Categories",
			Items:     items,
			Templates: templates,
			Size:      len(items),
			CursorPos: cursor,
			Stdin:     ioutil.NopCloser(cmd.InOrStdin()),
			Stdout:    NopCloser(cmd.OutOrStdout()),
		}

		i, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("pick: %w", err)
		}
		if items[i].Done {
			break
		}
		toggle(selected, items[i].target)
		cursor = i
	}

	return ordered(selected), nil
}

func toggle(s category.Set, c category.Category) {
	if s.Has(c) {
		delete(s, c.Effective())
		return
	}
	s[c.Effective()] = struct{}{}
}

// ordered lists the members of s in palette order.
func ordered(s category.Set) []category.Category {
	var out []category.Category
	for _, c := range category.All() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
