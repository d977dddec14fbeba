package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/instance"
)

// report is the printable outcome of a solve run.
type report struct {
	Instance      string    `json:"instance"`
	Nodes         int       `json:"nodes"`
	Tour          []int     `json:"tour"`
	Cost          float64   `json:"cost"`
	BestIteration int       `json:"best_iteration"`
	Iterations    int       `json:"iterations"`
	ElapsedMS     float64   `json:"elapsed_ms"`
	Optimum       *float64  `json:"optimum,omitempty"`
	GapPercent    *float64  `json:"gap_percent,omitempty"`
	History       []float64 `json:"history"`
}

func newReport(inst *instance.Instance, res aco.Result, elapsed time.Duration) report {
	return report{
		Instance:      inst.Name,
		Nodes:         inst.Size(),
		Tour:          res.Tour,
		Cost:          res.Cost,
		BestIteration: res.BestIteration,
		Iterations:    len(res.History),
		ElapsedMS:     float64(elapsed.Microseconds()) / 1000,
		History:       res.History,
	}
}

// setOptimum records the exact optimum and the relative gap to it.
func (r *report) setOptimum(opt float64) {
	gap := 0.0
	if opt > 0 {
		gap = (r.Cost - opt) / opt * 100
	}
	r.Optimum, r.GapPercent = &opt, &gap
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// writeText prints a boxed summary. Colours are only emitted when w is a
// terminal that supports them.
func (r report) writeText(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	label := re.NewStyle().Faint(true)
	box := re.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	lines := []string{
		title.Render(fmt.Sprintf("Best tour for %s (%d nodes)", r.Instance, r.Nodes)),
		"",
		label.Render("tour  ") + aco.FormatTour(r.Tour),
		label.Render("cost  ") + fmt.Sprintf("%g", r.Cost),
		label.Render("found ") + fmt.Sprintf("iteration %d of %d", r.BestIteration+1, r.Iterations),
		label.Render("took  ") + fmt.Sprintf("%.1f ms", r.ElapsedMS),
	}
	if r.Optimum != nil {
		lines = append(lines, label.Render("exact ")+fmt.Sprintf("%g (gap %.2f%%)", *r.Optimum, *r.GapPercent))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	_, err := fmt.Fprintln(w, box.Render(body))

	return err
}
