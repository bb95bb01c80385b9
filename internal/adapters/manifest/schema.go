package manifest

// packageFile is the on-disk shape of package.json and bower.json.
type packageFile struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Description          string            `json:"description"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
}

// registryFilenames maps registry names to the manifest file they read.
var registryFilenames = map[string]string{
	"npm":   "package.json",
	"yarn":  "package.json",
	"bower": "bower.json",
}
