package backport

import (
	"gitport.dev/gitport/internal/engine"
	apperrors "gitport.dev/gitport/internal/errors"
	"gitport.dev/gitport/internal/output"
)

// MergePolicy decides what happens when a merge commit shows up in the
// commits to replay.
type MergePolicy int

const (
	// MergeSkipWithWarning drops the merge commit from the closure and logs a
	// warning; its side effects are expected to be carried by its parents.
	MergeSkipWithWarning MergePolicy = iota
	// MergeReject fails the whole run when a merge commit is requested.
	MergeReject
)

// ClosureOptions controls how the commit closure is computed.
type ClosureOptions struct {
	// AutoDeps expands each requested commit into its ancestry relative to
	// the target tip. When false the requested list is replayed as given.
	AutoDeps bool
	// Merges is the merge-commit policy.
	Merges MergePolicy
}

// DefaultClosureOptions maps the CLI's --no-auto-deps flag to the policies
// the two modes imply: dependency expansion tolerates merges by skipping
// them, a hand-picked list does not.
func DefaultClosureOptions(noAutoDeps bool) ClosureOptions {
	if noAutoDeps {
		return ClosureOptions{AutoDeps: false, Merges: MergeReject}
	}
	return ClosureOptions{AutoDeps: true, Merges: MergeSkipWithWarning}
}

// ResolveClosure computes the ordered, de-duplicated list of commit ids to
// replay onto a branch whose tip is targetTip. The result is oldest first and
// never contains a commit already reachable from targetTip. The closure is
// computed once, up front; it must not be recomputed mid-replay, because the
// target tip advances as commits are applied.
//
// requested must hold fully resolved commit ids.
func ResolveClosure(eng engine.Engine, splog *output.Splog, requested []string, targetTip string, opts ClosureOptions) ([]string, error) {
	var collected []string
	if opts.AutoDeps {
		for _, id := range requested {
			ancestry, err := eng.CommitsBetween(id, targetTip)
			if err != nil {
				return nil, err
			}
			// The walk yields newest first; replay wants oldest first.
			for i := len(ancestry) - 1; i >= 0; i-- {
				commit := ancestry[i]
				if commit.IsMerge() {
					if opts.Merges == MergeReject {
						return nil, &apperrors.UnsupportedMergeCommitError{CommitID: commit.ID}
					}
					splog.Warn("skipping merge commit %s", commit.ShortID())
					continue
				}
				collected = append(collected, commit.ID)
			}
		}
	} else {
		for _, id := range requested {
			commit, err := eng.LookupCommit(id)
			if err != nil {
				return nil, err
			}
			if commit.IsMerge() {
				if opts.Merges == MergeReject {
					return nil, &apperrors.UnsupportedMergeCommitError{CommitID: commit.ID}
				}
				splog.Warn("skipping merge commit %s", commit.ShortID())
				continue
			}
			present, err := eng.IsAncestor(commit.ID, targetTip)
			if err != nil {
				return nil, err
			}
			if present {
				splog.Debug("%s already reachable from target, dropping it", commit.ShortID())
				continue
			}
			collected = append(collected, commit.ID)
		}
	}

	return dedupe(collected), nil
}

// dedupe removes duplicate ids, keeping each at its first-seen position.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
