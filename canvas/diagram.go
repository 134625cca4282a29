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

// Package canvas is a minimal host for palette and properties providers: it
// keeps placed shapes and drives the drag-to-place gesture. It is not safe
// for concurrent use.
package canvas

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/tidwall/btree"
	verrs "github.com/vine-io/vine/lib/errors"

	"github.com/vine-io/modeler/bpmn"
)

const ID = "go.modeler.canvas"

const (
	BpmnNamespace   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	BpmnDINamespace = "http://www.omg.org/spec/BPMN/20100524/DI"
	DCNamespace     = "http://www.omg.org/spec/DD/20100524/DC"
	DINamespace     = "http://www.omg.org/spec/DD/20100524/DI"
)

type Bounds struct {
	X      int64
	Y      int64
	Width  int64
	Height int64
}

// CenteredBounds returns the default-sized bounds of elem centred on (x, y).
func CenteredBounds(elem bpmn.Element, x, y int64) Bounds {
	w, h := bpmn.DefaultSize(elem)
	return Bounds{X: x - w/2, Y: y - h/2, Width: w, Height: h}
}

type Placement struct {
	Element bpmn.Element
	Bounds  Bounds
}

// Diagram holds the placed shapes, ordered by element id.
type Diagram struct {
	Id        string
	ProcessId string
	shapes    *btree.Map[string, *Placement]
}

func NewDiagram() *Diagram {
	return &Diagram{
		Id:        "Definitions_" + uuid.New().String(),
		ProcessId: bpmn.NewID("Process"),
		shapes:    &btree.Map[string, *Placement]{},
	}
}

// Add places elem. Adding an id that is already on the diagram fails.
func (d *Diagram) Add(elem bpmn.Element, bounds Bounds) error {
	if elem == nil || elem.GetID() == "" {
		return verrs.BadRequest(ID, "element without id can not be placed")
	}
	if _, ok := d.shapes.Get(elem.GetID()); ok {
		return verrs.BadRequest(ID, "element %s already placed", elem.GetID())
	}

	d.shapes.Set(elem.GetID(), &Placement{Element: elem, Bounds: bounds})
	return nil
}

func (d *Diagram) Get(id string) (*Placement, bool) {
	return d.shapes.Get(id)
}

func (d *Diagram) Remove(id string) bool {
	_, ok := d.shapes.Delete(id)
	return ok
}

func (d *Diagram) Len() int {
	return d.shapes.Len()
}

// Range calls fn for every placement in id order until fn returns false.
func (d *Diagram) Range(fn func(p *Placement) bool) {
	d.shapes.Scan(func(_ string, p *Placement) bool {
		return fn(p)
	})
}

// WriteToBytes dumps the diagram as a BPMN definitions document.
func (d *Diagram) WriteToBytes() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	definitions := doc.CreateElement("bpmn:definitions")
	definitions.CreateAttr("xmlns:bpmn", BpmnNamespace)
	definitions.CreateAttr("xmlns:bpmndi", BpmnDINamespace)
	definitions.CreateAttr("xmlns:dc", DCNamespace)
	definitions.CreateAttr("xmlns:di", DINamespace)
	definitions.CreateAttr("id", d.Id)
	definitions.CreateAttr("targetNamespace", "http://bpmn.io/schema/bpmn")

	process := definitions.CreateElement("bpmn:process")
	process.CreateAttr("id", d.ProcessId)
	process.CreateAttr("isExecutable", "false")

	diagram := definitions.CreateElement("bpmndi:BPMNDiagram")
	diagram.CreateAttr("id", "BPMNDiagram_1")
	plane := diagram.CreateElement("bpmndi:BPMNPlane")
	plane.CreateAttr("id", "BPMNPlane_1")
	plane.CreateAttr("bpmnElement", d.ProcessId)

	var err error
	d.Range(func(p *Placement) bool {
		child := process.CreateElement("")
		if err = bpmn.Serialize(p.Element, child); err != nil {
			return false
		}

		shape := plane.CreateElement("bpmndi:BPMNShape")
		shape.CreateAttr("id", p.Element.GetID()+"_di")
		shape.CreateAttr("bpmnElement", p.Element.GetID())
		if sp, ok := p.Element.(*bpmn.SubProcess); ok && sp.IsExpanded {
			shape.CreateAttr("isExpanded", "true")
		}
		if pp, ok := p.Element.(*bpmn.Participant); ok && pp.IsExpanded {
			shape.CreateAttr("isHorizontal", "true")
		}
		writeBounds(shape.CreateElement("dc:Bounds"), p.Bounds)
		return true
	})
	if err != nil {
		return nil, err
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func writeBounds(elem *etree.Element, b Bounds) {
	elem.CreateAttr("x", formatInt(b.X))
	elem.CreateAttr("y", formatInt(b.Y))
	elem.CreateAttr("width", formatInt(b.Width))
	elem.CreateAttr("height", formatInt(b.Height))
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
