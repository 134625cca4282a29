// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package modeler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"github.com/vine-io/modeler/palette"
	"github.com/vine-io/modeler/translate"
)

const DefaultConfigPath = "~/.modeler.yml"

var localeRe = regexp.MustCompile(`^[a-z]{2}([-_][A-Za-z]{2})?$`)

type Config struct {
	Locale       string         `json:"locale" yaml:"locale"`
	Translations string         `json:"translations" yaml:"translations"`
	LogLevel     string         `json:"logLevel" yaml:"logLevel"`
	Palette      palette.Config `json:"palette" yaml:"palette"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Palette:  palette.DefaultConfig(),
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Locale,
			validation.When(c.Translations != "", validation.Required.Error("is required with translations")),
			validation.Match(localeRe),
		),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "fatal")),
		validation.Field(&c.Palette),
	)
}

// LoadConfig reads a YAML config over the defaults. A missing file at the
// default path yields the defaults; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(expanded)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", expanded, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	if cfg.Palette.Mode == "" {
		cfg.Palette.Mode = palette.DefaultMode
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", expanded, err)
	}

	return cfg, nil
}

// Translator builds the translator for the configured locale.
func (c *Config) Translator() (translate.Translator, error) {
	if c.Translations == "" {
		return translate.Identity(), nil
	}

	path, err := homedir.Expand(c.Translations)
	if err != nil {
		return nil, err
	}

	catalog := translate.NewCatalog()
	if err = catalog.LoadFile(path); err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	return catalog.Translator(c.Locale), nil
}

// Options converts the config into Modeler options.
func (c *Config) Options() ([]Option, error) {
	t, err := c.Translator()
	if err != nil {
		return nil, err
	}
	return []Option{WithPalette(c.Palette), WithTranslator(t)}, nil
}
