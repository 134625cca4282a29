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
	verrs "github.com/vine-io/vine/lib/errors"
	log "github.com/vine-io/vine/lib/logger"

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/canvas"
	"github.com/vine-io/modeler/palette"
	"github.com/vine-io/modeler/properties"
)

const ID = "go.modeler"

type ActionKind string

const (
	Click     ActionKind = "click"
	DragStart ActionKind = "dragstart"
)

// Modeler wires the palette and properties providers to their host
// collaborators.
type Modeler struct {
	options Options

	diagram    *canvas.Diagram
	dragging   *canvas.Dragging
	palette    *palette.CustomProvider
	properties *properties.GeneralProvider
}

func New(opts ...Option) (*Modeler, error) {
	options := NewOptions(opts...)
	if options.Factory == nil {
		return nil, verrs.BadRequest(ID, "missing element factory")
	}

	m := &Modeler{options: options}

	if options.Creator == nil {
		m.diagram = canvas.NewDiagram()
		m.dragging = canvas.NewDragging(m.diagram)
		options.Creator = m.dragging
	}
	if options.Host == nil {
		options.Host = palette.NewDefaultProvider(options.Factory, options.Creator, options.Tools, options.Translator)
	}

	p, err := palette.NewCustomProvider(
		palette.WithDelegate(options.Host),
		palette.WithFactory(options.Factory),
		palette.WithCreator(options.Creator),
		palette.WithTranslator(options.Translator),
		palette.WithConfig(options.Palette),
	)
	if err != nil {
		return nil, err
	}
	m.palette = p

	m.properties = properties.NewGeneralProvider(
		properties.WithTranslator(options.Translator),
		properties.WithGroups(options.Groups...),
	)
	m.options = options

	log.Debugf("modeler ready, palette mode %s", options.Palette.Mode)
	return m, nil
}

func (m *Modeler) Options() Options {
	return m.options
}

// PaletteEntries computes the palette. Every call returns a fresh set.
func (m *Modeler) PaletteEntries() *palette.EntrySet {
	return m.palette.GetPaletteEntries()
}

// Tabs computes the properties panel of elem.
func (m *Modeler) Tabs(elem bpmn.Element) []*properties.Tab {
	return m.properties.GetTabs(elem)
}

// Trigger invokes the handler of a palette entry as if the user clicked or
// started dragging it.
func (m *Modeler) Trigger(key string, kind ActionKind, event *palette.Event) error {
	entry, ok := m.PaletteEntries().Get(key)
	if !ok {
		return verrs.NotFound(ID, "palette entry %s not found", key)
	}
	if entry.Action == nil {
		return verrs.BadRequest(ID, "palette entry %s has no action", key)
	}

	var fn palette.ActionFunc
	switch kind {
	case Click:
		fn = entry.Action.Click
	case DragStart:
		fn = entry.Action.DragStart
	default:
		return verrs.BadRequest(ID, "unknown action %q", kind)
	}
	if fn == nil {
		return verrs.BadRequest(ID, "palette entry %s has no %s action", key, kind)
	}

	return fn(event)
}

// Dragging returns the built-in placement controller, or nil when a custom
// Creator was supplied.
func (m *Modeler) Dragging() *canvas.Dragging {
	return m.dragging
}

// Diagram returns the built-in diagram, or nil when a custom Creator was
// supplied.
func (m *Modeler) Diagram() *canvas.Diagram {
	return m.diagram
}

// Update writes value into the property entry entryID of the placed element
// id.
func (m *Modeler) Update(id, entryID, value string) error {
	if m.diagram == nil {
		return verrs.BadRequest(ID, "modeler has no built-in diagram")
	}
	placement, ok := m.diagram.Get(id)
	if !ok {
		return verrs.NotFound(ID, "element %s not found", id)
	}

	entry, ok := properties.Find(m.Tabs(placement.Element), entryID)
	if !ok {
		return verrs.NotFound(ID, "property %s not found", entryID)
	}

	return entry.Set(placement.Element, value)
}
