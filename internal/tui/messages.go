package tui

import "github.com/qcfin/qcsim/internal/domain"

// SimulationDoneMsg carries a finished simulation back to the model.
type SimulationDoneMsg struct {
	Result *domain.SimulationResult
	Err    error
}

// ErrorMsg reports a non-fatal input problem shown in the status line.
type ErrorMsg struct {
	Err error
}
