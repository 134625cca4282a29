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

package properties

import (
	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/translate"
)

// Provider is queried by the host whenever the selection changes.
type Provider interface {
	GetTabs(elem bpmn.Element) []*Tab
}

// GroupBuilder builds one group for the selected element.
type GroupBuilder func(elem bpmn.Element, t translate.Translator) *Group

type Option func(p *GeneralProvider)

func WithTranslator(t translate.Translator) Option {
	return func(p *GeneralProvider) {
		p.translate = t
	}
}

// WithGroups appends groups to the general tab, after "General".
func WithGroups(builders ...GroupBuilder) Option {
	return func(p *GeneralProvider) {
		p.groups = append(p.groups, builders...)
	}
}

var _ Provider = (*GeneralProvider)(nil)

// GeneralProvider renders a single "General" tab. The element type is never
// inspected; every selection gets the same structure.
type GeneralProvider struct {
	translate translate.Translator
	groups    []GroupBuilder
}

func NewGeneralProvider(opts ...Option) *GeneralProvider {
	p := &GeneralProvider{}
	for _, o := range opts {
		o(p)
	}
	if p.translate == nil {
		p.translate = translate.Identity()
	}
	return p
}

func (p *GeneralProvider) GetTabs(elem bpmn.Element) []*Tab {
	groups := []*Group{GeneralGroup(elem, p.translate)}
	for _, build := range p.groups {
		if group := build(elem, p.translate); group != nil {
			groups = append(groups, group)
		}
	}

	return []*Tab{
		{
			ID:     "general",
			Label:  translate.T(p.translate, "General"),
			Groups: groups,
		},
	}
}

// GeneralGroup holds the name field and the read-only id field.
func GeneralGroup(elem bpmn.Element, t translate.Translator) *Group {
	group := &Group{
		ID:      "general",
		Label:   translate.T(t, "General"),
		Entries: []*Entry{},
	}

	group.Entries = append(group.Entries, TextBox(t, TextBoxOptions{
		ID:            "name",
		Label:         "Name",
		Description:   "The name of the element",
		ModelProperty: bpmn.PropertyName,
	}))

	group.Entries = append(group.Entries, TextBox(t, TextBoxOptions{
		ID:            "id",
		Label:         "ID",
		Description:   "The ID of the element",
		ModelProperty: bpmn.PropertyID,
		Disabled:      func(bpmn.Element) bool { return true },
	}))

	return group
}

// Find returns the entry with the given id from any tab and group.
func Find(tabs []*Tab, id string) (*Entry, bool) {
	for _, tab := range tabs {
		for _, group := range tab.Groups {
			for _, entry := range group.Entries {
				if entry.ID == id {
					return entry, true
				}
			}
		}
	}
	return nil, false
}
