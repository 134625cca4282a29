// Package translate provides the label translation used by palette entries
// and property panels. Templates may carry {placeholder} tokens that are
// substituted from a replacements map.
package translate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

type Translator interface {
	Translate(template string, replacements map[string]string) string
}

// Func adapts a plain function into a Translator.
type Func func(template string, replacements map[string]string) string

func (fn Func) Translate(template string, replacements map[string]string) string {
	return fn(template, replacements)
}

// Identity returns a Translator that only applies replacements.
func Identity() Translator {
	return Func(Replace)
}

// Replace substitutes every {key} in template with replacements[key]. Unknown
// placeholders are kept as written.
func Replace(template string, replacements map[string]string) string {
	if len(replacements) == 0 || !strings.Contains(template, "{") {
		return template
	}

	pairs := make([]string, 0, len(replacements)*2)
	for k, v := range replacements {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// T is a shorthand for translating a template without replacements.
func T(t Translator, template string) string {
	if t == nil {
		return template
	}
	return t.Translate(template, nil)
}

// Catalog holds translations keyed by locale, then by source template.
type Catalog struct {
	locales map[string]map[string]string
}

func NewCatalog() *Catalog {
	return &Catalog{locales: map[string]map[string]string{}}
}

// Load merges a YAML document of the form
//
//	de:
//	  General: Allgemein
//	  Name: Name
//
// into the catalog.
func (c *Catalog) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var doc map[string]map[string]string
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode translations: %w", err)
	}

	for locale, texts := range doc {
		c.Add(locale, texts)
	}
	return nil
}

// LoadFile loads translations from a YAML file.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Load(f)
}

func (c *Catalog) Add(locale string, texts map[string]string) {
	if c.locales == nil {
		c.locales = map[string]map[string]string{}
	}
	dst, ok := c.locales[locale]
	if !ok {
		dst = map[string]string{}
		c.locales[locale] = dst
	}
	for k, v := range texts {
		dst[k] = v
	}
}

func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	return out
}

// Translator returns a Translator for the locale. Templates without a
// translation are returned unchanged.
func (c *Catalog) Translator(locale string) Translator {
	texts := c.locales[locale]
	return Func(func(template string, replacements map[string]string) string {
		if v, ok := texts[template]; ok && v != "" {
			template = v
		}
		return Replace(template, replacements)
	})
}
