package config

// settings mirrors .filedeprc.yaml. Keys match the domain.Key* constants.
type settings struct {
	LockfileRoot         string `mapstructure:"lockfile_root"`
	LinkFileDependencies bool   `mapstructure:"link_file_dependencies"`
	Registry             string `mapstructure:"registry"`
	LockfileName         string `mapstructure:"lockfile_name"`
	Concurrency          int    `mapstructure:"concurrency"`
}
