package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicNotice = "Unexpected error (see logs)"

// guard keeps a panic in the form from tearing down the terminal. The panic is
// logged with its stack and the form is reset to a usable state.
type guard struct {
	inner  model
	log    *slog.Logger
	panics int
}

func guarded(m model, log *slog.Logger) guard {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return guard{inner: m, log: log}
}

func (g guard) Init() tea.Cmd {
	return g.inner.Init()
}

func (g guard) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			g.report("tui.update", r)
			g.inner = g.inner.reset(panicNotice)
			next, cmd = g, cmdClearToast()
		}
	}()

	updated, c := g.inner.Update(msg)
	if mm, ok := updated.(model); ok {
		g.inner = mm
	}
	return g, c
}

func (g guard) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.report("tui.view", r)
			out = panicNotice
		}
	}()
	return g.inner.View()
}

func (g *guard) report(where string, r any) {
	g.panics++
	g.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"count", g.panics,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = guard{}
