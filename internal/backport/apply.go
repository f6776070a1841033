package backport

import (
	"context"
	"fmt"

	"gitport.dev/gitport/internal/engine"
	"gitport.dev/gitport/internal/output"
)

// Conflict describes the cherry-pick that stopped a run.
type Conflict struct {
	CommitID string
	Paths    []string
}

// Report is the outcome of a backport run.
type Report struct {
	Branch   string
	Applied  []string
	Skipped  []string
	Conflict *Conflict
	NoOp     bool
}

// Conflicted reports whether the run stopped on a conflict.
func (r *Report) Conflicted() bool {
	return r.Conflict != nil
}

// Apply replays the closure onto the checked-out destination branch, one
// commit at a time. The first conflict stops the run immediately: remaining
// commits are not attempted and the repository is left mid cherry-pick so the
// operator can resolve in place. Any engine failure other than a conflict
// aborts with the engine's status surfaced verbatim.
func Apply(ctx context.Context, eng engine.Engine, splog *output.Splog, closure []string, destination string) (*Report, error) {
	report := &Report{Branch: destination}

	for _, id := range closure {
		splog.Info("cherry-picking %s", engine.ShortID(id))

		result, err := eng.CherryPick(ctx, id)
		if err != nil {
			return report, fmt.Errorf("cherry-pick %s: %w", engine.ShortID(id), err)
		}

		switch result {
		case engine.PickApplied:
			report.Applied = append(report.Applied, id)
		case engine.PickSkipped:
			splog.Warn("%s is already present on %s, skipped", engine.ShortID(id), destination)
			report.Skipped = append(report.Skipped, id)
		case engine.PickConflict:
			paths, rerr := ReportConflicts(eng, splog, destination)
			if rerr != nil {
				return report, rerr
			}
			report.Conflict = &Conflict{CommitID: id, Paths: paths}
			return report, nil
		}
	}

	return report, nil
}
