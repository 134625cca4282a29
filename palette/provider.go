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
	"github.com/vine-io/modeler/bpmn"
)

const ID = "go.modeler.palette"

// Provider is queried by the host whenever the palette is (re)drawn.
type Provider interface {
	GetPaletteEntries() *EntrySet
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func() *EntrySet

func (fn ProviderFunc) GetPaletteEntries() *EntrySet {
	return fn()
}

//go:generate mockgen -destination mock/mock_palette.go -package mock github.com/vine-io/modeler/palette Creator,Tools

// Creator starts the interactive placement of a new shape. The host owns the
// gesture from then on and commits the shape on drop.
type Creator interface {
	Start(event *Event, shape bpmn.Element) error
}

// Tools activates host tool controllers such as the hand or lasso tool.
type Tools interface {
	Activate(tool string, event *Event) error
}

// CreateAction binds both handlers of an Action to building a shape with
// factory and handing it to creator. Factory errors are returned as is and
// creator is not called.
func CreateAction(factory bpmn.Factory, creator Creator, attrs bpmn.ShapeAttrs) *Action {
	start := func(event *Event) error {
		shape, err := factory.CreateShape(attrs)
		if err != nil {
			return err
		}
		return creator.Start(event, shape)
	}

	return &Action{DragStart: start, Click: start}
}
