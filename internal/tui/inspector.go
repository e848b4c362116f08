// Package tui implements a terminal frame inspector: it feeds a byte
// source into a resp.Codec one chunk at a time and renders the receive
// buffer's occupancy alongside the Values each step yields.
package tui

import (
	"fmt"
	"io"

	"github.com/cosmez/respcodec/internal/output"
	"github.com/cosmez/respcodec/internal/resp"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App holds all inspector state.
type App struct {
	codec     *resp.Codec
	data      []byte
	pos       int
	chunkSize int
	step      int

	app        *tview.Application
	layout     *tview.Flex
	statusView *tview.TextView
	valuesView *tview.TextView
	ansiWriter io.Writer
}

// newApp builds the inspector's widgets without taking over the terminal,
// so tests can construct it and inspect its fields directly.
func newApp(data []byte, chunkSize int) *App {
	if chunkSize <= 0 {
		chunkSize = 32
	}

	a := &App{
		codec:     resp.New(),
		data:      data,
		chunkSize: chunkSize,
		app:       tview.NewApplication(),
	}

	a.statusView = tview.NewTextView().SetDynamicColors(true)
	a.statusView.SetBorder(true).SetTitle(" buffer ")

	a.valuesView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	a.valuesView.SetBorder(true).SetTitle(" values ")
	a.ansiWriter = tview.ANSIWriter(a.valuesView)

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]n[white]: feed next chunk   [yellow]q[white]: quit")

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.statusView, 3, 0, false).
		AddItem(a.valuesView, 0, 1, true).
		AddItem(help, 1, 0, false)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			a.stepForward()
			return nil
		case 'q':
			a.app.Stop()
			return nil
		}
		return event
	})

	a.renderStatus()
	return a
}

// stepForward writes the next chunk to the codec, parses whatever became
// available, and appends the resulting values to the values pane.
func (a *App) stepForward() {
	if a.pos >= len(a.data) {
		return
	}

	end := a.pos + a.chunkSize
	if end > len(a.data) {
		end = len(a.data)
	}
	chunk := a.data[a.pos:end]
	a.pos = end
	a.step++

	a.codec.Write(chunk)
	values, err := a.codec.Parse()

	fmt.Fprintf(a.ansiWriter, "[gray]--- step %d: wrote %d bytes ---[white]\n", a.step, len(chunk))
	if err != nil {
		fmt.Fprintf(a.ansiWriter, "[red]protocol error: %v[white]\n", err)
	} else if len(values) == 0 {
		fmt.Fprintln(a.ansiWriter, "[gray](no complete value yet)[white]")
	} else {
		for _, v := range values {
			output.PrintValue(a.ansiWriter, v, output.PrintOpts{Color: true, Newline: true})
		}
	}

	a.renderStatus()
}

func (a *App) renderStatus() {
	a.statusView.SetText(fmt.Sprintf(
		"fed %d/%d bytes   buffered (incomplete tail): %d bytes",
		a.pos, len(a.data), a.codec.Buffered(),
	))
}

// Run takes over the terminal and drives the inspector until the user
// quits.
func Run(data []byte, chunkSize int) error {
	a := newApp(data, chunkSize)
	return a.app.SetRoot(a.layout, true).EnableMouse(false).Run()
}
