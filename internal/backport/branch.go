package backport

import (
	"context"
	"fmt"
	"strings"

	"gitport.dev/gitport/internal/engine"
	"gitport.dev/gitport/internal/output"
)

// DeriveBranchName builds the destination branch name used when the operator
// does not supply one: backport/<target with '/' replaced>/<short id of the
// last closure entry>.
func DeriveBranchName(target string, closure []string) string {
	short := "unknown"
	if len(closure) > 0 {
		short = engine.ShortID(closure[len(closure)-1])
	}
	return fmt.Sprintf("backport/%s/%s", strings.ReplaceAll(target, "/", "-"), short)
}

// Materialize checks out the target branch and creates the destination branch
// from its tip. A pre-existing destination branch is reused as-is with a
// warning; replay then proceeds from whatever it currently points to.
func Materialize(ctx context.Context, eng engine.Engine, splog *output.Splog, target, explicit string, closure []string) (string, error) {
	name := explicit
	if name == "" {
		name = DeriveBranchName(target, closure)
		splog.Info("generated backport branch name: %s", name)
	}

	if err := eng.CheckoutBranch(ctx, target); err != nil {
		return "", err
	}

	exists, err := eng.BranchExists(name)
	if err != nil {
		return "", err
	}
	if exists {
		splog.Warn("branch %s already exists, reusing it", name)
		return name, eng.CheckoutBranch(ctx, name)
	}
	return name, eng.CreateAndCheckoutBranch(ctx, name, target)
}
