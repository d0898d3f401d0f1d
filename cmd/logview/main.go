// logview: a chunked viewer over a large generated combat-event log.
// Content above the virtualization threshold pages in 500-line chunks as
// you scroll; smaller content renders in one pass. j/k scroll, q quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"vlist"
)

var events = []string{"SPELL_DAMAGE", "SWING_DAMAGE", "SPELL_HEAL", "SPELL_CAST_SUCCESS", "SPELL_AURA_APPLIED", "UNIT_DIED"}

func fakeLog(lines int) vlist.SliceSource {
	body := make([]string, lines)
	for i := range body {
		body[i] = fmt.Sprintf("%02d:%02d:%02d.%03d  %s  amount=%d",
			i/3600%24, i/60%60, i%60, rand.Intn(1000),
			events[rand.Intn(len(events))], rand.Intn(50000))
	}
	return vlist.SliceSource{
		Head: []string{"COMBAT_LOG_VERSION 9", "lines: " + strconv.Itoa(lines), ""},
		Body: body,
	}
}

func main() {
	lines := flag.Int("lines", 5000, "body lines to generate")
	flag.Parse()

	// size the view to the terminal when we have one
	rows := 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && h > 2 {
			rows = h - 2
		}
	}

	vp, err := vlist.NewViewport(1, rows)
	if err != nil {
		log.Fatal(err)
	}
	cl, err := vlist.NewChunkLoader(fakeLog(*lines), vp, 500, 1000)
	if err != nil {
		log.Fatal(err)
	}
	cl.Open()

	if _, err := tea.NewProgram(vlist.NewTextModel(cl), tea.WithMouseCellMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
