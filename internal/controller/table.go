package controller

import (
	"io"
	"strconv"

	m "github.com/mouse-blink/gowc/internal/model"
	"github.com/olekukonko/tablewriter"
)

var metricTitles = map[m.Metric]string{
	m.MetricLines: "Lines",
	m.MetricWords: "Words",
	m.MetricBytes: "Bytes",
}

// TableUI collects rows and renders them as a borderless table on Close.
type TableUI struct {
	output io.Writer
	table  *tablewriter.Table
}

// NewTableUI creates a new TableUI writing to output.
func NewTableUI(output io.Writer) *TableUI {
	return &TableUI{output: output}
}

// Start initializes the UI.
func (t *TableUI) Start() error {
	t.table = nil

	return nil
}

// DisplayCounts appends a row for the source.
func (t *TableUI) DisplayCounts(source m.Source, counts m.Counts, metrics m.Metrics) error {
	t.ensureTable(metrics)

	row := make([]string, 0, len(metrics.Ordered())+1)
	for _, mt := range metrics.Ordered() {
		row = append(row, strconv.Itoa(counts.Value(mt)))
	}

	t.table.Append(append(row, source.Label()))

	return nil
}

// DisplayTotal sets the table footer. Zero totals are left blank.
func (t *TableUI) DisplayTotal(totals m.Counts, metrics m.Metrics) error {
	t.ensureTable(metrics)

	footer := make([]string, 0, len(metrics.Ordered())+1)
	for _, mt := range metrics.Ordered() {
		footer = append(footer, totalCell(totals.Value(mt)))
	}

	t.table.SetFooter(append(footer, totalLabel))

	return nil
}

// Close renders the collected rows.
func (t *TableUI) Close() error {
	if t.table == nil {
		return nil
	}

	t.table.Render()
	t.table = nil

	return nil
}

func (t *TableUI) ensureTable(metrics m.Metrics) {
	if t.table != nil {
		return
	}

	header := make([]string, 0, len(metrics.Ordered())+1)
	alignment := make([]int, 0, len(metrics.Ordered())+1)

	for _, mt := range metrics.Ordered() {
		header = append(header, metricTitles[mt])
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}

	table := tablewriter.NewWriter(t.output)
	table.SetHeader(append(header, "Source"))
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(append(alignment, tablewriter.ALIGN_LEFT))

	t.table = table
}
