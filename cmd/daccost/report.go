package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/rshade/daccost/internal/model"
	"github.com/rshade/daccost/internal/numeric"
)

// reportRow is one metric of a rendered report. Stddev is present only for
// uncertainty-propagating runs.
type reportRow struct {
	Metric string   `json:"metric"`
	Value  float64  `json:"value"`
	Stddev *float64 `json:"stddev,omitempty"`
}

type report struct {
	Scenario string      `json:"scenario"`
	Rows     []reportRow `json:"values"`
}

func floatRows(rec *model.Record[numeric.Float]) []reportRow {
	items := rec.Items()
	rows := make([]reportRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, reportRow{Metric: it.Name, Value: it.Value.Float()})
	}
	return rows
}

func uncertainRows(rec *model.Record[numeric.Uncertain]) []reportRow {
	items := rec.Items()
	rows := make([]reportRow, 0, len(items))
	for _, it := range items {
		s := it.Value.S
		rows = append(rows, reportRow{Metric: it.Name, Value: it.Value.V, Stddev: &s})
	}
	return rows
}

func renderTable(w io.Writer, rep report) error {
	if _, err := fmt.Fprintf(w, "%s\n", rep.Scenario); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rep.Rows {
		if row.Stddev != nil {
			fmt.Fprintf(tw, "  %s\t%.4f\t+/- %.4f\n", row.Metric, row.Value, *row.Stddev)
		} else {
			fmt.Fprintf(tw, "  %s\t%.4f\n", row.Metric, row.Value)
		}
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, reps []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reps)
}
