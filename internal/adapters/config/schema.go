package config

// Projectfile represents the structure of the kiln.yaml configuration file.
type Projectfile struct {
	Publisher string   `yaml:"publisher"`
	Project   string   `yaml:"project"`
	Version   string   `yaml:"version"`
	Java      *JavaDTO `yaml:"java"`
}

// JavaDTO is the language section understood by the javac toolchain.
type JavaDTO struct {
	TargetVersion string   `yaml:"targetVersion"`
	OutputFolder  string   `yaml:"outputFolder"`
	SourceFolders []string `yaml:"sourceFolders"`
	Dependencies  []string `yaml:"dependencies"`
	MaxErrors     int      `yaml:"maxErrors"`
	MaxWarnings   int      `yaml:"maxWarnings"`
}
