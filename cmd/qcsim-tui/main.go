package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/config"
	"github.com/qcfin/qcsim/internal/tui"
)

func main() {
	params := config.DefaultParameters()

	// Optional parameters file argument.
	if len(os.Args) > 1 {
		parser := config.NewParameterParser()
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		params = loaded
	}

	model := tui.NewModel(calculation.NewEngine(params))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
