package git

import (
	"github.com/go-git/go-git/v5/plumbing"

	apperrors "gitport.dev/gitport/internal/errors"
)

// ResolveRevision maps a revision string to a full commit id. It accepts the
// same forms go-git's resolver does: branch names, tags, remote branches,
// full and abbreviated hashes, HEAD and expressions like HEAD~2.
func (r *Repository) ResolveRevision(ref string) (string, error) {
	hash, err := r.resolveHash(ref)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

func (r *Repository) resolveHash(ref string) (plumbing.Hash, error) {
	// Try as a full reference name
	if res, err := r.repo.Reference(plumbing.ReferenceName(ref), true); err == nil {
		return res.Hash(), nil
	}

	// Try as a local branch
	if res, err := r.repo.Reference(plumbing.NewBranchReferenceName(ref), true); err == nil {
		return res.Hash(), nil
	}

	// Try as a remote branch
	if res, err := r.repo.Reference(plumbing.NewRemoteReferenceName("origin", ref), true); err == nil {
		return res.Hash(), nil
	}

	// Try as a tag
	if res, err := r.repo.Reference(plumbing.NewTagReferenceName(ref), true); err == nil {
		return res.Hash(), nil
	}

	// ResolveRevision handles SHAs, short SHAs and expressions like HEAD~1
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err == nil {
		return *hash, nil
	}

	return plumbing.ZeroHash, apperrors.NewUnresolvedReferenceError(ref, err)
}
