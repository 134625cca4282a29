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

package palette

import (
	verrs "github.com/vine-io/vine/lib/errors"
	log "github.com/vine-io/vine/lib/logger"

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/translate"
)

type Option func(o *Options)

type Options struct {
	// Delegate supplies the host entries. A nil delegate means an empty set.
	Delegate   Provider
	Factory    bpmn.Factory
	Creator    Creator
	Translator translate.Translator
	Config     Config
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Translator: translate.Identity(),
		Config:     DefaultConfig(),
	}

	for _, o := range opts {
		o(&options)
	}

	return options
}

func WithDelegate(delegate Provider) Option {
	return func(o *Options) {
		o.Delegate = delegate
	}
}

func WithFactory(factory bpmn.Factory) Option {
	return func(o *Options) {
		o.Factory = factory
	}
}

func WithCreator(creator Creator) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}

func WithTranslator(t translate.Translator) Option {
	return func(o *Options) {
		o.Translator = t
	}
}

func WithConfig(cfg Config) Option {
	return func(o *Options) {
		o.Config = cfg
	}
}

func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.Config.Mode = mode
	}
}

var _ Provider = (*CustomProvider)(nil)

// CustomProvider wraps the host palette: it drops denied entries, adds the
// custom ones and, in AllowMode, keeps only allowed keys.
type CustomProvider struct {
	Options
}

func NewCustomProvider(opts ...Option) (*CustomProvider, error) {
	options := NewOptions(opts...)

	if options.Factory == nil {
		return nil, verrs.BadRequest(ID, "missing element factory")
	}
	if options.Creator == nil {
		return nil, verrs.BadRequest(ID, "missing shape creator")
	}
	if options.Translator == nil {
		options.Translator = translate.Identity()
	}
	if err := options.Config.Validate(); err != nil {
		return nil, verrs.BadRequest(ID, "invalid palette config: %v", err)
	}

	return &CustomProvider{Options: options}, nil
}

func (p *CustomProvider) GetPaletteEntries() *EntrySet {
	var host *EntrySet
	if p.Delegate != nil {
		host = p.Delegate.GetPaletteEntries()
	}
	log.Debugf("host palette entries: %v", host.Keys())

	entries := p.Apply(host)
	log.Debugf("palette entries (%s mode): %v", p.Config.Mode, entries.Keys())

	return entries
}

// Apply computes the palette from the host entries. host itself is left
// untouched.
func (p *CustomProvider) Apply(host *EntrySet) *EntrySet {
	entries := host.Clone()

	for _, key := range p.Config.Deny {
		if entries.Delete(key) {
			log.Tracef("palette entry %s denied", key)
		}
	}

	for _, addition := range p.Config.Additions {
		entries.Set(addition.Key, p.additionEntry(addition))
	}

	if p.Config.Mode != AllowMode {
		return entries
	}

	allowed := make(map[string]struct{}, len(p.Config.Allow)+len(p.Config.Additions))
	for _, key := range p.Config.Allow {
		allowed[key] = struct{}{}
	}
	for _, addition := range p.Config.Additions {
		allowed[addition.Key] = struct{}{}
	}

	return entries.Filter(func(key string) bool {
		_, ok := allowed[key]
		return ok
	})
}

func (p *CustomProvider) additionEntry(addition Addition) *Entry {
	return &Entry{
		Group:     addition.Group,
		ClassName: addition.ClassName,
		Title:     translate.T(p.Translator, addition.Title),
		Action:    CreateAction(p.Factory, p.Creator, addition.Shape),
	}
}
