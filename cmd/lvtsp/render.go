package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvtsp/costmodel"
	"github.com/katalvlaran/lvtsp/tsp"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var tableHeaders = []string{"ALGORITHM", "COST", "ELAPSED", "SOLUTIONS", "ROUTE"}

// report is the JSON shape of one result. Cost is null when no feasible tour
// was found, since JSON has no infinity.
type report struct {
	Algorithm string           `json:"algorithm"`
	Feasible  bool             `json:"feasible"`
	Cost      *float64         `json:"cost"`
	ElapsedMS int64            `json:"elapsed_ms"`
	Solutions int              `json:"solutions"`
	Tour      []int            `json:"tour,omitempty"`
	Route     []string         `json:"route,omitempty"`
	Search    *tsp.SearchStats `json:"search,omitempty"`
}

func newReport(m costmodel.Model, r tsp.Result) report {
	rep := report{
		Algorithm: r.Algo.String(),
		Feasible:  r.Feasible(),
		ElapsedMS: r.Elapsed.Milliseconds(),
		Solutions: r.Solutions,
		Tour:      r.Tour,
		Route:     r.Route(m),
		Search:    r.Search,
	}
	if rep.Feasible {
		c := r.Cost
		rep.Cost = &c
	}

	return rep
}

func writeJSON(w io.Writer, runID string, m costmodel.Model, results []tsp.Result) error {
	out := struct {
		RunID   string   `json:"run_id"`
		Results []report `json:"results"`
	}{RunID: runID, Results: make([]report, len(results))}
	for i, r := range results {
		out.Results[i] = newReport(m, r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func tableRow(m costmodel.Model, r tsp.Result) []string {
	route := "-"
	if r.Feasible() {
		route = strings.Join(r.Route(m), " ")
	}

	return []string{
		r.Algo.String(),
		strconv.FormatFloat(r.Cost, 'g', -1, 64),
		r.Elapsed.String(),
		strconv.Itoa(r.Solutions),
		route,
	}
}

// writeTable renders a bordered table on terminals and tab-separated lines
// otherwise, so that piped output stays parseable.
func writeTable(w io.Writer, m costmodel.Model, results []tsp.Result) error {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = tableRow(m, r)
	}

	if !isTerminal(w) {
		lines := make([]string, 0, len(rows)+1)
		lines = append(lines, strings.Join(tableHeaders, "\t"))
		for _, row := range rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(tableHeaders...).
		Rows(rows...)
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render("lvtsp results"), t.Render())

	return err
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
