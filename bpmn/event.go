package bpmn

var (
	_ Element = (*StartEvent)(nil)
	_ Element = (*IntermediateThrowEvent)(nil)
	_ Element = (*EndEvent)(nil)
)

type StartEvent struct {
	ModelMeta
}

func (e *StartEvent) GetShape() Shape { return StartEventShape }

type IntermediateThrowEvent struct {
	ModelMeta
}

func (e *IntermediateThrowEvent) GetShape() Shape { return IntermediateEventShape }

type EndEvent struct {
	ModelMeta
}

func (e *EndEvent) GetShape() Shape { return EndEventShape }

// IsEvent reports whether the element is drawn as an event circle.
func IsEvent(elem Element) bool {
	switch elem.GetShape() {
	case StartEventShape, IntermediateEventShape, EndEventShape:
		return true
	default:
		return false
	}
}
