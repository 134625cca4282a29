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

	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/translate"
)

const (
	HandTool          = "hand-tool"
	LassoTool         = "lasso-tool"
	SpaceTool         = "space-tool"
	GlobalConnectTool = "global-connect-tool"
)

var _ Provider = (*DefaultProvider)(nil)

// DefaultProvider supplies the editor's built-in palette: the tool buttons
// followed by one create button per common element type.
type DefaultProvider struct {
	factory   bpmn.Factory
	creator   Creator
	tools     Tools
	translate translate.Translator
}

func NewDefaultProvider(factory bpmn.Factory, creator Creator, tools Tools, t translate.Translator) *DefaultProvider {
	if t == nil {
		t = translate.Identity()
	}
	return &DefaultProvider{factory: factory, creator: creator, tools: tools, translate: t}
}

func (p *DefaultProvider) GetPaletteEntries() *EntrySet {
	set := NewEntrySet()

	set.Set(HandTool, p.toolEntry(HandTool, "bpmn-icon-hand-tool", "Activate the hand tool"))
	set.Set(LassoTool, p.toolEntry(LassoTool, "bpmn-icon-lasso-tool", "Activate the lasso tool"))
	set.Set(SpaceTool, p.toolEntry(SpaceTool, "bpmn-icon-space-tool", "Activate the create/remove space tool"))
	set.Set(GlobalConnectTool, p.toolEntry(GlobalConnectTool, "bpmn-icon-connection-multi", "Activate the global connect tool"))
	set.Set("tool-separator", &Entry{Group: "tools", Separator: true})

	p.createEntry(set, "create.start-event", "event", "bpmn-icon-start-event-none", "Create StartEvent",
		bpmn.ShapeAttrs{Type: "bpmn:StartEvent"})
	p.createEntry(set, "create.intermediate-event", "event", "bpmn-icon-intermediate-event-none", "Create Intermediate/Boundary Event",
		bpmn.ShapeAttrs{Type: "bpmn:IntermediateThrowEvent"})
	p.createEntry(set, "create.end-event", "event", "bpmn-icon-end-event-none", "Create EndEvent",
		bpmn.ShapeAttrs{Type: "bpmn:EndEvent"})
	p.createEntry(set, "create.exclusive-gateway", "gateway", "bpmn-icon-gateway-none", "Create Gateway",
		bpmn.ShapeAttrs{Type: "bpmn:ExclusiveGateway"})
	p.createEntry(set, "create.task", "activity", "bpmn-icon-task", "Create Task",
		bpmn.ShapeAttrs{Type: "bpmn:Task"})
	p.createEntry(set, "create.data-object", "data-object", "bpmn-icon-data-object", "Create DataObjectReference",
		bpmn.ShapeAttrs{Type: "bpmn:DataObjectReference"})
	p.createEntry(set, "create.data-store", "data-store", "bpmn-icon-data-store", "Create DataStoreReference",
		bpmn.ShapeAttrs{Type: "bpmn:DataStoreReference"})
	p.createEntry(set, "create.subprocess-expanded", "activity", "bpmn-icon-subprocess-expanded", "Create expanded SubProcess",
		bpmn.ShapeAttrs{Type: "bpmn:SubProcess", IsExpanded: true})
	p.createEntry(set, "create.participant-expanded", "collaboration", "bpmn-icon-participant", "Create Pool/Participant",
		bpmn.ShapeAttrs{Type: "bpmn:Participant", IsExpanded: true})
	p.createEntry(set, "create.group", "artifact", "bpmn-icon-group", "Create Group",
		bpmn.ShapeAttrs{Type: "bpmn:Group"})

	return set
}

func (p *DefaultProvider) createEntry(set *EntrySet, key, group, className, title string, attrs bpmn.ShapeAttrs) {
	set.Set(key, &Entry{
		Group:     group,
		ClassName: className,
		Title:     translate.T(p.translate, title),
		Action:    CreateAction(p.factory, p.creator, attrs),
	})
}

func (p *DefaultProvider) toolEntry(tool, className, title string) *Entry {
	activate := func(event *Event) error {
		if p.tools == nil {
			return verrs.BadRequest(ID, "tool %s is not available", tool)
		}
		return p.tools.Activate(tool, event)
	}

	return &Entry{
		Group:     "tools",
		ClassName: className,
		Title:     translate.T(p.translate, title),
		Action:    &Action{DragStart: activate, Click: activate},
	}
}
