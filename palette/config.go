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
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vine-io/modeler/bpmn"
)

// Mode selects how the host entries are filtered.
type Mode string

const (
	// DenyMode keeps every host entry except the denied ones.
	DenyMode Mode = "deny"
	// AllowMode keeps only allowed entries and the custom additions.
	AllowMode Mode = "allow"
)

const DefaultMode = AllowMode

// The deny list is applied before the allow list, so a key present in both
// is removed.
var (
	DefaultAllow = []string{
		"create.start-event",
		"create.end-event",
		"create.exclusive-gateway",
	}

	DefaultDeny = []string{
		"create.data-store",
		"create.cancel-event",
		"create.escalation-event",
		"create.task",
		"create.subprocess",
		"create.subprocess-expanded",
	}
)

// Addition is a custom entry inserted regardless of what the host supplied.
type Addition struct {
	Key       string          `json:"key" yaml:"key"`
	Group     string          `json:"group" yaml:"group"`
	ClassName string          `json:"className" yaml:"className"`
	Title     string          `json:"title" yaml:"title"`
	Shape     bpmn.ShapeAttrs `json:"shape" yaml:"shape"`
}

func (a Addition) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Key, validation.Required),
		validation.Field(&a.Shape, validation.By(func(value interface{}) error {
			attrs, _ := value.(bpmn.ShapeAttrs)
			_, err := bpmn.ParseType(attrs.Type)
			return err
		})),
	)
}

func DefaultAdditions() []Addition {
	return []Addition{
		{
			Key:       "create.call-activity",
			Group:     "activity",
			ClassName: "bpmn-icon-call-activity",
			Title:     "Create CallActivity",
			Shape:     bpmn.ShapeAttrs{Type: "bpmn:CallActivity"},
		},
		{
			Key:       "create.event-subprocess",
			Group:     "activity",
			ClassName: "bpmn-icon-event-subprocess-expanded",
			Title:     "Create Event SubProcess",
			Shape:     bpmn.ShapeAttrs{Type: "bpmn:SubProcess", IsExpanded: true, TriggeredByEvent: true},
		},
		{
			Key:       "create.script-task",
			Group:     "activity",
			ClassName: "bpmn-icon-script-task",
			Title:     "Create ScriptTask",
			Shape:     bpmn.ShapeAttrs{Type: "bpmn:ScriptTask"},
		},
	}
}

// Config is the filtering policy of a CustomProvider.
type Config struct {
	Mode      Mode       `json:"mode" yaml:"mode"`
	Allow     []string   `json:"allow" yaml:"allow"`
	Deny      []string   `json:"deny" yaml:"deny"`
	Additions []Addition `json:"additions" yaml:"additions"`
}

func DefaultConfig() Config {
	return Config{
		Mode:      DefaultMode,
		Allow:     append([]string{}, DefaultAllow...),
		Deny:      append([]string{}, DefaultDeny...),
		Additions: DefaultAdditions(),
	}
}

func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.Required, validation.In(DenyMode, AllowMode)),
		validation.Field(&c.Allow, validation.Each(validation.Required)),
		validation.Field(&c.Deny, validation.Each(validation.Required)),
		validation.Field(&c.Additions),
	)
	if err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for _, addition := range c.Additions {
		if _, ok := seen[addition.Key]; ok {
			return fmt.Errorf("duplicate addition %q", addition.Key)
		}
		seen[addition.Key] = struct{}{}
	}
	return nil
}
