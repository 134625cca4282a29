package bpmn

// ShapeAttrs describes the shape a factory should build: a BPMN type tag
// plus the optional sub-process flags.
type ShapeAttrs struct {
	Type             string `json:"type" yaml:"type"`
	IsExpanded       bool   `json:"isExpanded,omitempty" yaml:"isExpanded,omitempty"`
	TriggeredByEvent bool   `json:"triggeredByEvent,omitempty" yaml:"triggeredByEvent,omitempty"`
}

//go:generate mockgen -destination mock/mock_bpmn.go -package mock github.com/vine-io/modeler/bpmn Factory

// Factory builds new diagram elements.
type Factory interface {
	CreateShape(attrs ShapeAttrs) (Element, error)
}

var _ Factory = (*ElementFactory)(nil)

// ElementFactory is the default Factory. Every element gets a fresh random id.
type ElementFactory struct{}

func NewElementFactory() *ElementFactory {
	return &ElementFactory{}
}

func (f *ElementFactory) CreateShape(attrs ShapeAttrs) (Element, error) {
	shape, err := ParseType(attrs.Type)
	if err != nil {
		return nil, err
	}

	elem, err := NewElement(shape)
	if err != nil {
		return nil, err
	}

	switch v := elem.(type) {
	case *SubProcess:
		v.IsExpanded = attrs.IsExpanded
		v.TriggeredByEvent = attrs.TriggeredByEvent
	case *Participant:
		v.IsExpanded = attrs.IsExpanded
	}
	elem.SetID(randShapeName(elem))

	return elem, nil
}

// DefaultSize returns the width and height an element gets when it is placed
// without explicit bounds.
func DefaultSize(elem Element) (int64, int64) {
	switch v := elem.(type) {
	case *SubProcess:
		if v.IsExpanded {
			return 350, 200
		}
		return 100, 80
	case *Participant:
		if v.IsExpanded {
			return 600, 250
		}
		return 400, 60
	}

	switch {
	case IsEvent(elem):
		return 36, 36
	case IsGateway(elem):
		return 50, 50
	}

	switch elem.GetShape() {
	case DataObjectShape:
		return 36, 50
	case DataStoreShape:
		return 50, 50
	case GroupShape:
		return 300, 300
	default:
		return 100, 80
	}
}
