package config

// Adventfile represents the structure of the advent.yaml configuration file.
type Adventfile struct {
	Version string `yaml:"version"`
	Inputs  string `yaml:"inputs"`
	Cache   string `yaml:"cache"`
	Jobs    int    `yaml:"jobs"`
}
