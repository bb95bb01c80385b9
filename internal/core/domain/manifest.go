package domain

const (
	// DefaultRegistry is the package registry assumed when none is known.
	DefaultRegistry = "npm"

	// DefaultVersion is the version given to synthesized manifests.
	DefaultVersion = "0.0.0"
)

// RemoteKind tags how a resolved dependency is materialized.
type RemoteKind string

const (
	// RemoteLink references the dependency in place (symlink).
	RemoteLink RemoteKind = "link"
	// RemoteCopy copies the dependency content into the install target.
	RemoteCopy RemoteKind = "copy"
)

// RemoteDescriptor describes how to materialize a dependency.
type RemoteDescriptor struct {
	// Kind is either RemoteLink or RemoteCopy.
	Kind RemoteKind `json:"type" yaml:"type"`

	// Registry is the registry the manifest belongs to.
	Registry string `json:"registry" yaml:"registry"`

	// Hash is the change token of a copy. It is empty for links.
	Hash string `json:"hash,omitempty" yaml:"hash,omitempty"`

	// Reference is the absolute path of the dependency on disk.
	Reference string `json:"reference" yaml:"reference"`
}

// Manifest is a resolved package descriptor.
type Manifest struct {
	Name                 string            `json:"name" yaml:"name"`
	Version              string            `json:"version" yaml:"version"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	Dependencies         map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty" yaml:"optionalDependencies,omitempty"`

	// UID is the unique id of the manifest. Resolvers set it to Version.
	UID string `json:"_uid" yaml:"_uid"`

	// Registry is the registry the manifest was read for.
	Registry string `json:"_registry" yaml:"_registry"`

	// Remote tells the installer how to materialize the dependency.
	Remote *RemoteDescriptor `json:"_remote,omitempty" yaml:"_remote,omitempty"`
}

// AllDependencies returns the dependencies of every group merged into one map.
// Regular dependencies win over optional and dev dependencies of the same name.
func (m *Manifest) AllDependencies() map[string]string {
	all := make(map[string]string, len(m.Dependencies)+len(m.DevDependencies)+len(m.OptionalDependencies))
	for _, group := range []map[string]string{m.DevDependencies, m.OptionalDependencies, m.Dependencies} {
		for name, rng := range group {
			all[name] = rng
		}
	}
	return all
}
