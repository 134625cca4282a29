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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	verrs "github.com/vine-io/vine/lib/errors"

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/palette"
	"github.com/vine-io/modeler/properties"
	"github.com/vine-io/modeler/translate"
)

func TestNewOptions(t *testing.T) {
	options := NewOptions()
	assert.NotNil(t, options.Factory)
	assert.NotNil(t, options.Translator)
	assert.Equal(t, palette.AllowMode, options.Palette.Mode)

	options = NewOptions(WithPaletteMode(palette.DenyMode), WithFactory(nil))
	assert.Equal(t, palette.DenyMode, options.Palette.Mode)
	assert.Nil(t, options.Factory)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(WithFactory(nil))
	assert.Error(t, err)

	_, err = New(WithPaletteMode("strict"))
	assert.Error(t, err)
}

func TestModeler_PaletteEntries(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"create.start-event",
		"create.end-event",
		"create.exclusive-gateway",
		"create.call-activity",
		"create.event-subprocess",
		"create.script-task",
	}, m.PaletteEntries().Keys())

	m, err = New(WithPaletteMode(palette.DenyMode))
	require.NoError(t, err)
	keys := m.PaletteEntries().Keys()
	assert.Contains(t, keys, "hand-tool")
	assert.Contains(t, keys, "create.group")
	assert.NotContains(t, keys, "create.task")
	assert.NotContains(t, keys, "create.data-store")
}

func TestModeler_TriggerAndDrop(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	require.NoError(t, m.Trigger("create.call-activity", Click, &palette.Event{X: 200, Y: 150}))

	shape, ok := m.Dragging().Active()
	require.True(t, ok)
	assert.Equal(t, "bpmn:CallActivity", bpmn.TypeOf(shape))

	placement, err := m.Dragging().End()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Diagram().Len())

	require.NoError(t, m.Update(placement.Element.GetID(), "name", "Invoke billing"))
	assert.Equal(t, "Invoke billing", placement.Element.GetName())

	err = m.Update(placement.Element.GetID(), "id", "Activity_other")
	assert.Error(t, err)

	assert.Equal(t, int32(404), int32(verrs.FromErr(m.Update("missing", "name", "x")).Code))
	assert.Equal(t, int32(404), int32(verrs.FromErr(m.Update(placement.Element.GetID(), "missing", "x")).Code))
}

func TestModeler_TriggerErrors(t *testing.T) {
	m, err := New(WithPaletteMode(palette.DenyMode))
	require.NoError(t, err)

	err = m.Trigger("create.task", Click, &palette.Event{})
	assert.Equal(t, int32(404), int32(verrs.FromErr(err).Code))

	err = m.Trigger("tool-separator", Click, &palette.Event{})
	assert.Equal(t, int32(400), int32(verrs.FromErr(err).Code))

	err = m.Trigger("create.script-task", "hover", &palette.Event{})
	assert.Equal(t, int32(400), int32(verrs.FromErr(err).Code))

	err = m.Trigger(palette.HandTool, Click, &palette.Event{})
	assert.Error(t, err, "no tools wired")
}

type recordTools struct {
	activated []string
}

func (r *recordTools) Activate(tool string, _ *palette.Event) error {
	r.activated = append(r.activated, tool)
	return nil
}

func TestModeler_Tools(t *testing.T) {
	tools := &recordTools{}
	m, err := New(WithPaletteMode(palette.DenyMode), WithTools(tools))
	require.NoError(t, err)

	require.NoError(t, m.Trigger(palette.SpaceTool, DragStart, &palette.Event{}))
	assert.Equal(t, []string{palette.SpaceTool}, tools.activated)
}

func TestModeler_Tabs(t *testing.T) {
	docs := func(elem bpmn.Element, tr translate.Translator) *properties.Group {
		return &properties.Group{ID: "docs", Label: translate.T(tr, "Documentation")}
	}
	m, err := New(WithGroups(docs))
	require.NoError(t, err)

	tabs := m.Tabs(nil)
	require.Len(t, tabs, 1)
	require.Len(t, tabs[0].Groups, 2)
	assert.Equal(t, "docs", tabs[0].Groups[1].ID)
}

func TestModeler_CustomCreator(t *testing.T) {
	var started []bpmn.Element
	creator := creatorFunc(func(_ *palette.Event, shape bpmn.Element) error {
		started = append(started, shape)
		return nil
	})

	m, err := New(WithCreator(creator))
	require.NoError(t, err)
	assert.Nil(t, m.Dragging())
	assert.Nil(t, m.Diagram())

	require.NoError(t, m.Trigger("create.start-event", Click, &palette.Event{}))
	require.Len(t, started, 1)
	assert.IsType(t, &bpmn.StartEvent{}, started[0])

	assert.Error(t, m.Update("any", "name", "x"))
}

type creatorFunc func(event *palette.Event, shape bpmn.Element) error

func (fn creatorFunc) Start(event *palette.Event, shape bpmn.Element) error {
	return fn(event, shape)
}
