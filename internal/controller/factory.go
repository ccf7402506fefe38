package controller

import (
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates a UI for the requested output mode.
// When table is true, it returns a TableUI (tablewriter).
// When table is false, it returns a SimpleUI (wc columns).
func NewUI(cmd *cobra.Command, table bool) UI {
	if table {
		return NewTableUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given stream is a terminal (TTY).
// Returns false if the stream is redirected to a file or pipe.
func IsTTY(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
