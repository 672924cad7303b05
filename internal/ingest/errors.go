package ingest

import (
	"fmt"
	"strings"
)

// MissingColumnError reports required columns absent from an input table.
// It is raised before any classification work starts.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Columns, ", "))
}
