// Package config loads the repository-list files consumed by the
// multi-repository fan-out commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// reposFile is the on-disk shape of a repos config. Either top-level key is
// accepted; "repos" wins when both are present.
type reposFile struct {
	Repos        []string `yaml:"repos"`
	Repositories []string `yaml:"repositories"`
}

// LoadRepos reads a YAML file listing repository paths.
func LoadRepos(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg reposFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(cfg.Repos) > 0 {
		return cfg.Repos, nil
	}
	return cfg.Repositories, nil
}
