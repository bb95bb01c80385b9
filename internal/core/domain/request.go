package domain

// PackageRequest is a node in the tree of pending package requests.
//
// The tree is built and owned by the surrounding resolver. Parent is a
// back-reference only: a child never owns its ancestors.
type PackageRequest struct {
	// Pattern is the resolution pattern of this request ("label@range").
	Pattern string

	// Parent is the request that caused this one, or nil for top-level requests.
	Parent *PackageRequest

	// ParentNames are the name labels accumulated from the root down to this node.
	// The last element is the name under which Parent was requested.
	ParentNames []InternedString

	// Registry is the registry hint used when reading manifests.
	// An empty registry means DefaultRegistry.
	Registry string
}

// NewRootRequest creates a top-level request without a parent.
func NewRootRequest(pattern string) *PackageRequest {
	return &PackageRequest{
		Pattern:  pattern,
		Registry: DefaultRegistry,
	}
}

// Child creates a request made by r. label is the name r was requested under;
// it is appended to a copy of r's labels so siblings never share backing arrays.
func (r *PackageRequest) Child(label, pattern string) *PackageRequest {
	names := make([]InternedString, len(r.ParentNames), len(r.ParentNames)+1)
	copy(names, r.ParentNames)
	names = append(names, NewInternedString(label))

	return &PackageRequest{
		Pattern:     pattern,
		Parent:      r,
		ParentNames: names,
		Registry:    r.Registry,
	}
}

// Name returns the package name of the request's pattern.
func (r *PackageRequest) Name() string {
	return PatternName(r.Pattern)
}

// RegistryOrDefault returns the registry hint, falling back to DefaultRegistry.
func (r *PackageRequest) RegistryOrDefault() string {
	if r.Registry == "" {
		return DefaultRegistry
	}
	return r.Registry
}

// Depth returns the number of ancestors of the request.
func (r *PackageRequest) Depth() int {
	depth := 0
	for cur := r.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// LastParentName returns the last accumulated label, or false if there is none.
func (r *PackageRequest) LastParentName() (string, bool) {
	if len(r.ParentNames) == 0 {
		return "", false
	}
	name := r.ParentNames[len(r.ParentNames)-1].String()
	return name, name != ""
}
