// Package backport implements the dependency-resolution and
// sequential-application engine behind the backport command: resolving
// revisions, computing the ancestry closure of the requested commits relative
// to a target branch, creating the destination branch and replaying the
// closure until done or conflicted.
package backport

import (
	"context"
	"strings"

	"gitport.dev/gitport/internal/engine"
	"gitport.dev/gitport/internal/output"
)

// Options carries the operator's request for one backport run.
type Options struct {
	// Source is the branch, tag or commit the backport is taken from.
	Source string
	// Target is the branch the commits are replayed onto.
	Target string
	// Commits optionally names the exact commits to backport. Empty means
	// the resolved source tip.
	Commits []string
	// BranchName optionally overrides the derived destination branch name.
	BranchName string
	// NoAutoDeps disables ancestry expansion; only the listed commits are
	// replayed, and merge commits are rejected.
	NoAutoDeps bool
	// AllowDirty skips the clean working-tree check. An in-progress
	// merge/rebase/cherry-pick still refuses to run.
	AllowDirty bool
}

// Run executes one backport end to end. The stages are strictly linear:
// validate, resolve, branch, apply. A conflict is a terminal state reported
// in the Report, not an error; errors are reserved for fatal conditions.
func Run(ctx context.Context, eng engine.Engine, splog *output.Splog, opts Options) (*Report, error) {
	sourceTip, err := eng.ResolveRevision(opts.Source)
	if err != nil {
		return nil, err
	}
	targetTip, err := eng.ResolveRevision(opts.Target)
	if err != nil {
		return nil, err
	}

	requested := make([]string, 0, len(opts.Commits))
	for _, ref := range opts.Commits {
		id, err := eng.ResolveRevision(ref)
		if err != nil {
			return nil, err
		}
		requested = append(requested, id)
	}
	if len(requested) == 0 {
		requested = []string{sourceTip}
	}

	if err := EnsureSafe(eng, opts.AllowDirty); err != nil {
		return nil, err
	}

	closure, err := ResolveClosure(eng, splog, requested, targetTip, DefaultClosureOptions(opts.NoAutoDeps))
	if err != nil {
		return nil, err
	}
	if len(closure) == 0 {
		splog.Info("nothing to backport: requested commits are already contained in %s", opts.Target)
		return &Report{NoOp: true}, nil
	}

	shorts := make([]string, 0, len(closure))
	for _, id := range closure {
		shorts = append(shorts, engine.ShortID(id))
	}
	splog.Info("commits to backport: %s", strings.Join(shorts, ", "))

	branch, err := Materialize(ctx, eng, splog, opts.Target, opts.BranchName, closure)
	if err != nil {
		return nil, err
	}

	report, err := Apply(ctx, eng, splog, closure, branch)
	if err != nil {
		return report, err
	}
	if !report.Conflicted() {
		splog.Info("backport complete on %s, push manually when ready", output.ColorGreen(branch))
	}
	return report, nil
}
