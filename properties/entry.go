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
	verrs "github.com/vine-io/vine/lib/errors"

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/translate"
)

const ID = "go.modeler.properties"

const TextBoxKind = "textBox"

// Entry is one editable field of the properties panel.
type Entry struct {
	ID            string `json:"id" yaml:"id"`
	Kind          string `json:"kind" yaml:"kind"`
	Label         string `json:"label" yaml:"label"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	ModelProperty string `json:"modelProperty" yaml:"modelProperty"`

	// Disabled is evaluated on every render. Nil means always editable.
	Disabled func(elem bpmn.Element) bool `json:"-" yaml:"-"`
}

func (e *Entry) IsDisabled(elem bpmn.Element) bool {
	if e.Disabled == nil {
		return false
	}
	return e.Disabled(elem)
}

// Get returns the current value of the bound attribute keyed by the model
// property. A nil element yields an empty value.
func (e *Entry) Get(elem bpmn.Element) map[string]string {
	value, _ := bpmn.GetProperty(elem, e.ModelProperty)
	return map[string]string{e.ModelProperty: value}
}

// Set writes value into the bound attribute.
func (e *Entry) Set(elem bpmn.Element, value string) error {
	if elem == nil {
		return verrs.BadRequest(ID, "entry %s: no element selected", e.ID)
	}
	if e.IsDisabled(elem) {
		return verrs.BadRequest(ID, "entry %s of %s is read-only", e.ID, elem.GetID())
	}
	if err := bpmn.SetProperty(elem, e.ModelProperty, value); err != nil {
		return verrs.BadRequest(ID, "entry %s: %v", e.ID, err)
	}
	return nil
}

type Group struct {
	ID      string   `json:"id" yaml:"id"`
	Label   string   `json:"label" yaml:"label"`
	Entries []*Entry `json:"entries" yaml:"entries"`
}

type Tab struct {
	ID     string   `json:"id" yaml:"id"`
	Label  string   `json:"label" yaml:"label"`
	Groups []*Group `json:"groups" yaml:"groups"`
}

type TextBoxOptions struct {
	ID            string
	Label         string
	Description   string
	ModelProperty string
	Disabled      func(elem bpmn.Element) bool
}

// TextBox builds a free-text entry, translating its label and description.
func TextBox(t translate.Translator, opts TextBoxOptions) *Entry {
	entry := &Entry{
		ID:            opts.ID,
		Kind:          TextBoxKind,
		Label:         translate.T(t, opts.Label),
		ModelProperty: opts.ModelProperty,
		Disabled:      opts.Disabled,
	}
	if opts.Description != "" {
		entry.Description = translate.T(t, opts.Description)
	}
	return entry
}
