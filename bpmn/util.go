package bpmn

import (
	"strings"

	"github.com/vine-io/pkg/xname"
)

func randName() string {
	return xname.Gen(xname.C(7), xname.Lowercase(), xname.Digit())
}

func randShapeName(elem Element) string {
	prefix := "Activity"
	switch {
	case elem.GetShape() == StartEventShape:
		prefix = "StartEvent"
	case IsEvent(elem):
		prefix = "Event"
	case IsGateway(elem):
		prefix = "Gateway"
	case !IsActivity(elem):
		prefix = strings.TrimPrefix(elem.GetShape().Type(), "bpmn:")
	}

	return prefix + "_" + randName()
}

// NewID returns a random identifier with the given prefix, in the same
// format used for element ids.
func NewID(prefix string) string {
	return prefix + "_" + randName()
}
