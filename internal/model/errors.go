package model

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrSourceFileMissing marks a required input file that does not exist.
// The orchestrator treats this as fatal unless the caller opted into demo
// mode; the core engine never synthesizes data implicitly.
var ErrSourceFileMissing = eris.New("required source file missing")

// MissingColumnError reports a required column absent from a raw input
// table. Structural: the responsible normalizer aborts its output entirely
// rather than propagate a subtly wrong table.
type MissingColumnError struct {
	Source string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Source, e.Column)
}
