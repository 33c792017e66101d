/*
File    : langc/project/project.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package project decodes the external project file spec.md §6 describes: a
whitespace-indented, YAML-subset `key: value` configuration naming a
project's source paths and dependencies. SPEC_FULL.md §4.K promotes
`gopkg.in/yaml.v3` from the teacher's transitive dependency to a direct one
for this decode, since the described format is already a YAML subset.
*/
package project

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Dependency is one entry of a project's dependency list.
type Dependency struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Path    string `yaml:"path"`
}

// File is the decoded shape of a project file.
type File struct {
	Name         string       `yaml:"name"`
	SourcePaths  []string     `yaml:"sourcePaths"`
	Dependencies []Dependency `yaml:"dependencies"`
}

// Load reads and decodes the project file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
