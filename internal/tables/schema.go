package tables

// FileConfig represents the top-level structure of the routing tables YAML.
// Both sections are optional; anything present overrides or extends the
// built-in tables.
type FileConfig struct {
	Platforms  []PlatformProps   `yaml:"platforms,omitempty"`
	Extensions map[string]string `yaml:"extensions,omitempty"`
}

// PlatformProps describes one platform entry in the tables file.
type PlatformProps struct {
	Key   string   `yaml:"key"`
	Hosts []string `yaml:"hosts"`
	Name  string   `yaml:"name,omitempty"`
	Glyph string   `yaml:"glyph,omitempty"`
}
