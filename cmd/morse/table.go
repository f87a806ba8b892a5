package morse

import (
	"io"
	"os"

	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

func printTable(w io.Writer) {
	colored := isTerminal(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Char", "Morse", "Pattern", "Units"})

	for _, c := range codec.Characters() {
		p, _ := codec.CharToPattern(c)
		code := p.Render(codec.DefaultShort, codec.DefaultLong)
		if colored {
			code = text.FgHiCyan.Sprint(code)
		}
		char := string(c)
		if codec.IsAlias(c) {
			char += " (=X)"
		}
		t.AppendRow(table.Row{char, code, string(p), units(p)})
	}
	t.Render()
}

// units is the keyed length of p including the gaps between its pulses.
func units(p codec.Pattern) int {
	n := len(p) - 1
	for _, pulse := range p.Pulses() {
		if pulse == codec.Long {
			n += 3
		} else {
			n++
		}
	}
	return n
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
