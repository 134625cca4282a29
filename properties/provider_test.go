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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	verrs "github.com/vine-io/vine/lib/errors"

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/translate"
)

func TestGeneralProvider_GetTabs(t *testing.T) {
	elements := []bpmn.Element{
		nil,
		&bpmn.Task{},
		&bpmn.StartEvent{},
		&bpmn.ExclusiveGateway{},
		&bpmn.SubProcess{IsExpanded: true, TriggeredByEvent: true},
		&bpmn.Participant{},
	}

	p := NewGeneralProvider()
	for _, elem := range elements {
		tabs := p.GetTabs(elem)
		require.Len(t, tabs, 1)
		assert.Equal(t, "general", tabs[0].ID)
		assert.Equal(t, "General", tabs[0].Label)

		require.Len(t, tabs[0].Groups, 1)
		group := tabs[0].Groups[0]
		assert.Equal(t, "General", group.Label)

		require.Len(t, group.Entries, 2)
		assert.False(t, group.Entries[0].IsDisabled(elem))
		assert.True(t, group.Entries[1].IsDisabled(elem))
	}
}

func TestGeneralProvider_Entries(t *testing.T) {
	tabs := NewGeneralProvider().GetTabs(&bpmn.Task{})

	want := []*Entry{
		{ID: "name", Kind: TextBoxKind, Label: "Name", Description: "The name of the element", ModelProperty: "name"},
		{ID: "id", Kind: TextBoxKind, Label: "ID", Description: "The ID of the element", ModelProperty: "id"},
	}
	got := tabs[0].Groups[0].Entries
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Entry{}, "Disabled")); diff != "" {
		t.Errorf("general entries mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneralProvider_FreshStructure(t *testing.T) {
	p := NewGeneralProvider()
	first := p.GetTabs(nil)
	first[0].Groups[0].Entries = nil

	second := p.GetTabs(nil)
	assert.Len(t, second[0].Groups[0].Entries, 2)
}

func TestEntry_GetSet(t *testing.T) {
	task := &bpmn.Task{}
	task.SetID("Activity_1")

	tabs := NewGeneralProvider().GetTabs(task)
	name, ok := Find(tabs, "name")
	require.True(t, ok)
	id, ok := Find(tabs, "id")
	require.True(t, ok)

	require.NoError(t, name.Set(task, "Review order"))
	assert.Equal(t, map[string]string{"name": "Review order"}, name.Get(task))
	assert.Equal(t, map[string]string{"id": "Activity_1"}, id.Get(task))

	err := id.Set(task, "Activity_2")
	if assert.Error(t, err) {
		assert.Equal(t, int32(400), int32(verrs.FromErr(err).Code))
	}
	assert.Equal(t, "Activity_1", task.GetID())

	assert.Equal(t, map[string]string{"name": ""}, name.Get(nil))
	assert.Error(t, name.Set(nil, "x"))

	_, ok = Find(tabs, "documentation")
	assert.False(t, ok)
}

func TestGeneralProvider_Translate(t *testing.T) {
	catalog := translate.NewCatalog()
	catalog.Add("de", map[string]string{
		"General":                 "Allgemein",
		"The ID of the element":   "Die ID des Elements",
		"The name of the element": "Der Name des Elements",
	})

	tabs := NewGeneralProvider(WithTranslator(catalog.Translator("de"))).GetTabs(nil)
	assert.Equal(t, "Allgemein", tabs[0].Label)
	assert.Equal(t, "Allgemein", tabs[0].Groups[0].Label)
	assert.Equal(t, "Der Name des Elements", tabs[0].Groups[0].Entries[0].Description)
	assert.Equal(t, "Name", tabs[0].Groups[0].Entries[0].Label)
	assert.Equal(t, "Die ID des Elements", tabs[0].Groups[0].Entries[1].Description)
}

func TestGeneralProvider_WithGroups(t *testing.T) {
	documentation := func(elem bpmn.Element, tr translate.Translator) *Group {
		if elem == nil {
			return nil
		}
		return &Group{
			ID:    "documentation",
			Label: translate.T(tr, "Documentation"),
			Entries: []*Entry{TextBox(tr, TextBoxOptions{
				ID:            "documentation",
				Label:         "Element Documentation",
				ModelProperty: "documentation",
			})},
		}
	}

	p := NewGeneralProvider(WithGroups(documentation))

	tabs := p.GetTabs(&bpmn.Task{})
	require.Len(t, tabs[0].Groups, 2)
	assert.Equal(t, "general", tabs[0].Groups[0].ID)
	assert.Equal(t, "documentation", tabs[0].Groups[1].ID)

	assert.Len(t, p.GetTabs(nil)[0].Groups, 1)
}
