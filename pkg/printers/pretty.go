package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/timeutil"
)

// DefaultNameWidth is the widest an item name is printed before truncation.
const DefaultNameWidth = 40

type PrettyPrint struct {
	Out       io.Writer
	NameWidth uint
	// Swatches prefixes each row with its category color.
	Swatches bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) name(s string) string {
	w := pp.NameWidth
	if w == 0 {
		w = DefaultNameWidth
	}
	return truncate.StringWithTail(s, w, "…")
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Window prints the date range and zoom of w.
func (pp *PrettyPrint) Window(w layout.Window) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Start"), w.Start.Format(timeutil.LayoutISO))
	tbl.AddRow(bold.Sprint("End"), w.End.Format(timeutil.LayoutISO))
	tbl.AddRow(bold.Sprint("Days"), strconv.FormatFloat(w.TotalDays, 'f', -1, 64))
	tbl.AddRow(bold.Sprint("Zoom"), faint.Sprintf("%gx", w.Zoom))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Lanes prints assigned items grouped by lane.
func (pp *PrettyPrint) Lanes(assigned []item.Item, laneCount int) {
	if len(assigned) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Lane"), bold.Sprint("ID"), bold.Sprint("Start"), bold.Sprint("End"), bold.Sprint("Days"), bold.Sprint("Category"), bold.Sprint("Name")}
	if pp.Swatches {
		header = append([]interface{}{""}, header...)
	}
	tbl.AddRow(header...)

	for lane, items := range layout.Lanes(assigned, laneCount) {
		for i, it := range items {
			laneLabel := ""
			if i == 0 {
				laneLabel = strconv.Itoa(lane)
			}
			row := []interface{}{
				laneLabel,
				y.Sprint(it.ID),
				it.Start.String(),
				it.End.String(),
				strconv.Itoa(spanDays(it)),
				it.Category.String(),
				pp.name(it.Name),
			}
			if pp.Swatches {
				row = append([]interface{}{Swatch(it.Category)}, row...)
			}
			tbl.AddRow(row...)
		}
	}
	if pp.Swatches {
		tbl.RightAlign(1)
	} else {
		tbl.RightAlign(0)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Layout prints a full layout result.
func (pp *PrettyPrint) Layout(res layout.Result) {
	pp.Window(res.Window)
	pp.NewLine()
	pp.TitleWithCount("Lanes", res.LaneCount, "lane")
	pp.Lanes(res.Items, res.LaneCount)
}

// Item prints a single item as a key/value table.
func (pp *PrettyPrint) Item(it item.Item) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), it.ID)
	tbl.AddRow(bold.Sprint("Name"), pp.name(it.Name))
	tbl.AddRow(bold.Sprint("Start"), it.Start.String())
	tbl.AddRow(bold.Sprint("End"), it.End.String())
	tbl.AddRow(bold.Sprint("Days"), spanDays(it))
	tbl.AddRow(bold.Sprint("Category"), it.Category.String())
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// spanDays counts inclusive calendar days.
func spanDays(it item.Item) int {
	return int(it.Duration()/timeutil.Day) + 1
}
