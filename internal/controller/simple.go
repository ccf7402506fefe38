package controller

import (
	"fmt"

	m "github.com/mouse-blink/gowc/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI prints classic wc columns to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// DisplayCounts prints one padded row labelled with the source path.
func (s *SimpleUI) DisplayCounts(source m.Source, counts m.Counts, metrics m.Metrics) error {
	return s.println(FormatRow(counts, metrics, source.Label()))
}

// DisplayTotal prints the total row.
func (s *SimpleUI) DisplayTotal(totals m.Counts, metrics m.Metrics) error {
	return s.println(FormatTotalRow(totals, metrics))
}

// Close finalizes the UI.
func (s *SimpleUI) Close() error {
	return nil
}

func (s *SimpleUI) println(line string) error {
	_, err := fmt.Fprintln(s.cmd.OutOrStdout(), line)

	return err
}
