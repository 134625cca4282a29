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

package canvas

import (
	verrs "github.com/vine-io/vine/lib/errors"
	log "github.com/vine-io/vine/lib/logger"

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/palette"
)

type gesture struct {
	shape bpmn.Element
	x     int64
	y     int64
}

var _ palette.Creator = (*Dragging)(nil)

// Dragging drives the drag-to-place gesture started by palette actions. At
// most one gesture is active; the shape joins the diagram only on End.
type Dragging struct {
	diagram *Diagram
	active  *gesture
}

func NewDragging(diagram *Diagram) *Dragging {
	return &Dragging{diagram: diagram}
}

func (d *Dragging) Diagram() *Diagram {
	return d.diagram
}

// Start begins placing shape at the event position. A gesture that is still
// in progress is cancelled first.
func (d *Dragging) Start(event *palette.Event, shape bpmn.Element) error {
	if shape == nil {
		return verrs.BadRequest(ID, "no shape to place")
	}
	if d.active != nil {
		log.Debugf("cancel placement of %s", d.active.shape.GetID())
		d.Cancel()
	}

	g := &gesture{shape: shape}
	if event != nil {
		g.x, g.y = event.X, event.Y
	}
	d.active = g
	log.Tracef("start placement of %s (%s) at %d,%d", shape.GetID(), bpmn.TypeOf(shape), g.x, g.y)

	return nil
}

// Active returns the shape being placed, if any.
func (d *Dragging) Active() (bpmn.Element, bool) {
	if d.active == nil {
		return nil, false
	}
	return d.active.shape, true
}

func (d *Dragging) Move(x, y int64) error {
	if d.active == nil {
		return verrs.BadRequest(ID, "no placement in progress")
	}
	d.active.x, d.active.y = x, y
	return nil
}

// End drops the shape at its last position and commits it to the diagram.
func (d *Dragging) End() (*Placement, error) {
	if d.active == nil {
		return nil, verrs.BadRequest(ID, "no placement in progress")
	}

	g := d.active
	d.active = nil

	bounds := CenteredBounds(g.shape, g.x, g.y)
	if err := d.diagram.Add(g.shape, bounds); err != nil {
		return nil, err
	}
	log.Debugf("placed %s at %d,%d", g.shape.GetID(), bounds.X, bounds.Y)

	placement, _ := d.diagram.Get(g.shape.GetID())
	return placement, nil
}

// Cancel discards the shape being placed. It is a no-op without a gesture.
func (d *Dragging) Cancel() {
	d.active = nil
}
