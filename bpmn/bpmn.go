package bpmn

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownType = errors.New("unknown element type")

type Shape int32

const (
	StartEventShape Shape = iota + 1
	IntermediateEventShape
	EndEventShape
	TaskShape
	ScriptTaskShape
	UserTaskShape
	ServiceTaskShape
	CallActivityShape
	SubProcessShape
	ExclusiveGatewayShape
	InclusiveGatewayShape
	ParallelGatewayShape
	DataObjectShape
	DataStoreShape
	ParticipantShape
	GroupShape
)

var shapeTypes = map[Shape]string{
	StartEventShape:        "bpmn:StartEvent",
	IntermediateEventShape: "bpmn:IntermediateThrowEvent",
	EndEventShape:          "bpmn:EndEvent",
	TaskShape:              "bpmn:Task",
	ScriptTaskShape:        "bpmn:ScriptTask",
	UserTaskShape:          "bpmn:UserTask",
	ServiceTaskShape:       "bpmn:ServiceTask",
	CallActivityShape:      "bpmn:CallActivity",
	SubProcessShape:        "bpmn:SubProcess",
	ExclusiveGatewayShape:  "bpmn:ExclusiveGateway",
	InclusiveGatewayShape:  "bpmn:InclusiveGateway",
	ParallelGatewayShape:   "bpmn:ParallelGateway",
	DataObjectShape:        "bpmn:DataObjectReference",
	DataStoreShape:         "bpmn:DataStoreReference",
	ParticipantShape:       "bpmn:Participant",
	GroupShape:             "bpmn:Group",
}

// Type returns the qualified BPMN type tag of the shape, e.g. "bpmn:Task".
func (s Shape) Type() string {
	return shapeTypes[s]
}

func (s Shape) String() string {
	if t, ok := shapeTypes[s]; ok {
		return strings.TrimPrefix(t, "bpmn:")
	}
	return fmt.Sprintf("Shape(%d)", int32(s))
}

// ParseType resolves a qualified BPMN type tag into its Shape.
func ParseType(tag string) (Shape, error) {
	for shape, t := range shapeTypes {
		if t == tag {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, tag)
}

type Element interface {
	GetShape() Shape
	GetID() string
	SetID(string)
	GetName() string
	SetName(string)
}

// TypeOf returns the BPMN type tag of the element.
func TypeOf(elem Element) string {
	if elem == nil {
		return ""
	}
	return elem.GetShape().Type()
}

type ModelMeta struct {
	Id   string
	Name string
}

func (m *ModelMeta) GetID() string {
	return m.Id
}

func (m *ModelMeta) SetID(id string) {
	m.Id = id
}

func (m *ModelMeta) GetName() string {
	return m.Name
}

func (m *ModelMeta) SetName(name string) {
	m.Name = name
}

// NewElement returns an empty element of the given shape.
func NewElement(shape Shape) (Element, error) {
	var elem Element
	switch shape {
	case StartEventShape:
		elem = &StartEvent{}
	case IntermediateEventShape:
		elem = &IntermediateThrowEvent{}
	case EndEventShape:
		elem = &EndEvent{}
	case TaskShape:
		elem = &Task{}
	case ScriptTaskShape:
		elem = &ScriptTask{}
	case UserTaskShape:
		elem = &UserTask{}
	case ServiceTaskShape:
		elem = &ServiceTask{}
	case CallActivityShape:
		elem = &CallActivity{}
	case SubProcessShape:
		elem = &SubProcess{}
	case ExclusiveGatewayShape:
		elem = &ExclusiveGateway{}
	case InclusiveGatewayShape:
		elem = &InclusiveGateway{}
	case ParallelGatewayShape:
		elem = &ParallelGateway{}
	case DataObjectShape:
		elem = &DataObjectReference{}
	case DataStoreShape:
		elem = &DataStoreReference{}
	case ParticipantShape:
		elem = &Participant{}
	case GroupShape:
		elem = &Group{}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, shape)
	}
	return elem, nil
}
