package bpmn

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

var serializers = map[Shape]Serializer{
	StartEventShape:        &elementSerde{shape: StartEventShape},
	IntermediateEventShape: &elementSerde{shape: IntermediateEventShape},
	EndEventShape:          &elementSerde{shape: EndEventShape},
	TaskShape:              &elementSerde{shape: TaskShape},
	ScriptTaskShape:        &elementSerde{shape: ScriptTaskShape},
	UserTaskShape:          &elementSerde{shape: UserTaskShape},
	ServiceTaskShape:       &elementSerde{shape: ServiceTaskShape},
	CallActivityShape:      &elementSerde{shape: CallActivityShape},
	SubProcessShape:        &subProcessSerde{inner: elementSerde{shape: SubProcessShape}},
	ExclusiveGatewayShape:  &elementSerde{shape: ExclusiveGatewayShape},
	InclusiveGatewayShape:  &elementSerde{shape: InclusiveGatewayShape},
	ParallelGatewayShape:   &elementSerde{shape: ParallelGatewayShape},
	DataObjectShape:        &elementSerde{shape: DataObjectShape},
	DataStoreShape:         &elementSerde{shape: DataStoreShape},
	ParticipantShape:       &elementSerde{shape: ParticipantShape},
	GroupShape:             &elementSerde{shape: GroupShape},
}

type Serializer interface {
	Serialize(elem Element, start *etree.Element) error
}

// Tag returns the XML tag of the shape, e.g. "bpmn:callActivity".
func Tag(shape Shape) string {
	local := strings.TrimPrefix(shape.Type(), "bpmn:")
	if local == "" {
		return ""
	}
	return "bpmn:" + strings.ToLower(local[:1]) + local[1:]
}

func Serialize(elem Element, start *etree.Element) error {
	if elem == nil {
		return fmt.Errorf("nil element not support to serialize")
	}
	serializer, ok := serializers[elem.GetShape()]
	if !ok {
		return fmt.Errorf("%s not support to serialize", elem.GetShape())
	}

	return serializer.Serialize(elem, start)
}

type elementSerde struct {
	shape Shape
}

func (s *elementSerde) Serialize(elem Element, start *etree.Element) error {
	if elem.GetShape() != s.shape {
		return fmt.Errorf("%v is not %s", elem.GetID(), s.shape)
	}

	start.Space = "bpmn"
	start.Tag = strings.TrimPrefix(Tag(s.shape), "bpmn:")
	if elem.GetID() != "" {
		start.CreateAttr("id", elem.GetID())
	}
	if elem.GetName() != "" {
		start.CreateAttr("name", elem.GetName())
	}

	return nil
}

type subProcessSerde struct{ inner elementSerde }

func (s *subProcessSerde) Serialize(elem Element, start *etree.Element) error {
	process, ok := elem.(*SubProcess)
	if !ok {
		return fmt.Errorf("%v is not SubProcess", elem.GetID())
	}
	if err := s.inner.Serialize(process, start); err != nil {
		return err
	}

	if process.TriggeredByEvent {
		start.CreateAttr("triggeredByEvent", "true")
	}

	return nil
}
