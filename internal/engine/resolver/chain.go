package resolver

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParentChain returns the local path segments declared by the ancestors of req,
// ordered from the node closest to the root down to req's direct parent.
//
// Each ancestor contributes its declared range with the "<label>@" prefix and
// the "file:" protocol removed. Ancestors with a non-local range (registry
// packages) contribute nothing.
func ParentChain(req *domain.PackageRequest) ([]string, error) {
	var segments []string
	for cur := req; cur.Parent != nil; cur = cur.Parent {
		label, ok := cur.LastParentName()
		if !ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrMalformedRequestTree, "cannot reconstruct dependency location"),
				"pattern", cur.Pattern,
			)
		}

		rng := strings.TrimPrefix(cur.Parent.Pattern, label+domain.PatternSeparator)
		if !domain.IsLocalPath(rng) {
			continue
		}
		segments = append(segments, domain.StripProtocol(rng))
	}

	slices.Reverse(segments)
	return segments, nil
}

// Location returns the absolute location of loc as declared by req.
// An absolute loc is returned as is; anything else is resolved against the
// lockfile root followed by the parent chain of req.
func Location(root string, req *domain.PackageRequest, loc string) (string, error) {
	if filepath.IsAbs(loc) {
		return domain.ResolvePath(loc), nil
	}

	chain, err := ParentChain(req)
	if err != nil {
		return "", err
	}
	return domain.ResolvePath(root, append(chain, loc)...), nil
}
