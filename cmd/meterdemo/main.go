// meterdemo: a damage-meter window over the virtualized list engine.
// Keys: j/k scroll, / search, c cycle category, z toggle zero-activity
// rows, 1-6 sort by column, q quit.
package main

import (
	"log"
	"math/rand"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"vlist"
)

type participant struct {
	Name    string
	Class   string
	Damage  float64
	Healing float64
	Taken   float64
}

var (
	firstNames = []string{"Thrall", "Jaina", "Anduin", "Sylvanas", "Varok", "Tyrande", "Malfurion", "Garrosh", "Baine", "Vol'jin"}
	classes    = []string{"warrior", "mage", "priest", "rogue", "shaman"}
)

func fakeRaid(n int) []participant {
	rs := make([]participant, n)
	for i := range rs {
		rs[i] = participant{
			Name:    firstNames[i%len(firstNames)] + "-" + strconv.Itoa(i/len(firstNames)+1),
			Class:   classes[rand.Intn(len(classes))],
			Damage:  float64(rand.Intn(2_000_000)),
			Healing: float64(rand.Intn(800_000)),
			Taken:   float64(rand.Intn(500_000)),
		}
	}
	// a few idle participants so the zero-activity toggle has something to do
	for i := 0; i < n/10; i++ {
		j := rand.Intn(n)
		rs[j].Damage, rs[j].Healing, rs[j].Taken = 0, 0, 0
	}
	return rs
}

func main() {
	cols := vlist.NewColumns(
		vlist.Column[participant]{
			ID: "name", Title: "Name", Width: 16,
			Key:    func(p participant) any { return p.Name },
			Format: func(p participant) string { return p.Name },
		},
		vlist.Column[participant]{
			ID: "class", Title: "Class", Width: 8,
			Key:    func(p participant) any { return p.Class },
			Format: func(p participant) string { return p.Class },
		},
		vlist.Column[participant]{
			ID: "damage", Title: "Damage", Width: 11, Align: vlist.AlignRight,
			Key:    func(p participant) any { return p.Damage },
			Format: func(p participant) string { return vlist.FormatNumber(p.Damage, 0) },
		},
		vlist.Column[participant]{
			ID: "healing", Title: "Healing", Width: 11, Align: vlist.AlignRight,
			Key:    func(p participant) any { return p.Healing },
			Format: func(p participant) string { return vlist.FormatNumber(p.Healing, 0) },
		},
		vlist.Column[participant]{
			ID: "taken", Title: "Taken", Width: 11, Align: vlist.AlignRight,
			Key:    func(p participant) any { return p.Taken },
			Format: func(p participant) string { return vlist.FormatNumber(p.Taken, 0) },
		},
		vlist.Column[participant]{
			ID: "total", Title: "Total", Width: 11, Align: vlist.AlignRight,
			Key:    func(p participant) any { return p.Damage + p.Healing },
			Format: func(p participant) string { return vlist.FormatNumber(p.Damage+p.Healing, 0) },
		},
	).Name("name").Category("class").Activity("damage", "healing", "taken").DefaultSort("total")

	vp, err := vlist.NewViewport(1, 20)
	if err != nil {
		log.Fatal(err)
	}
	list, err := vlist.NewList(cols, vp)
	if err != nil {
		log.Fatal(err)
	}
	list.SetDataset(fakeRaid(120))

	m := vlist.NewModel(list, classes...)
	if _, err := tea.NewProgram(m, tea.WithMouseCellMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
