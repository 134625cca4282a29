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
	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/palette"
	"github.com/vine-io/modeler/properties"
	"github.com/vine-io/modeler/translate"
)

// Options enumerates the host collaborators a Modeler is wired with. Host
// supplies the built-in palette entries and defaults to palette.DefaultProvider;
// Creator runs the placement gesture and defaults to a canvas.Dragging.
type Options struct {
	Host       palette.Provider
	Factory    bpmn.Factory
	Creator    palette.Creator
	Tools      palette.Tools
	Translator translate.Translator
	Palette    palette.Config
	Groups     []properties.GroupBuilder
}

type Option func(o *Options)

func NewOptions(opts ...Option) Options {
	options := Options{
		Factory:    bpmn.NewElementFactory(),
		Translator: translate.Identity(),
		Palette:    palette.DefaultConfig(),
	}

	for _, o := range opts {
		o(&options)
	}

	return options
}

func WithHost(host palette.Provider) Option {
	return func(o *Options) {
		o.Host = host
	}
}

func WithFactory(factory bpmn.Factory) Option {
	return func(o *Options) {
		o.Factory = factory
	}
}

func WithCreator(creator palette.Creator) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}

func WithTools(tools palette.Tools) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

func WithTranslator(t translate.Translator) Option {
	return func(o *Options) {
		o.Translator = t
	}
}

func WithPalette(cfg palette.Config) Option {
	return func(o *Options) {
		o.Palette = cfg
	}
}

// WithPaletteMode overrides only the filtering mode of the palette config.
func WithPaletteMode(mode palette.Mode) Option {
	return func(o *Options) {
		o.Palette.Mode = mode
	}
}

func WithGroups(builders ...properties.GroupBuilder) Option {
	return func(o *Options) {
		o.Groups = append(o.Groups, builders...)
	}
}
