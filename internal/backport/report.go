package backport

import (
	"gitport.dev/gitport/internal/engine"
	"gitport.dev/gitport/internal/output"
)

// ReportConflicts enumerates the conflicting paths on the destination branch
// and prints operator guidance. It never resolves or aborts anything; the
// half-applied branch stays behind as an inspectable artifact.
func ReportConflicts(eng engine.Engine, splog *output.Splog, destination string) ([]string, error) {
	status, err := eng.Status()
	if err != nil {
		return nil, err
	}

	splog.Error("conflict on branch %s", destination)
	for _, path := range status.Conflicting {
		splog.Info("  %s", output.ColorRed(path))
	}
	splog.Newline()
	splog.Info("resolve the conflicts, then run %s", output.ColorCyan("git cherry-pick --continue"))
	splog.Info("or abandon the pick with %s", output.ColorCyan("git cherry-pick --abort"))

	return status.Conflicting, nil
}
