package cmd

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ezerfernandes/codefence/internal/render"
	"github.com/ezerfernandes/codefence/internal/theme"
)

const defaultConfigFile = ".codefence.yaml"

type config struct {
	Style   string       `yaml:"style"`
	Classes *bool        `yaml:"classes"`
	Labels  theme.Labels `yaml:"labels"`
	Live    liveConfig   `yaml:"live"`
}

type liveConfig struct {
	Exec    bool          `yaml:"exec"`
	Timeout time.Duration `yaml:"timeout"`
	Langs   []string      `yaml:"langs"`
	Dir     string        `yaml:"dir"`
}

// loadConfig reads the YAML configuration at path. A missing file is an
// error only when the path was given explicitly.
func loadConfig(path string, explicit bool) (*config, error) {
	cfg := new(config)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}

		return nil, errtrace.Wrap(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errtrace.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *config) useClasses() bool {
	return c.Classes == nil || *c.Classes
}

func (c *config) labels() theme.Labels {
	return theme.DefaultLabels().Merge(c.Labels)
}

func (c *config) liveRunner() (render.LiveRunner, error) {
	if !c.Live.Exec {
		return nil, nil
	}

	runner, err := render.NewShellRunner(c.Live.Langs, c.Live.Timeout, c.Live.Dir)
	if err != nil {
		return nil, err
	}

	return runner, nil
}
