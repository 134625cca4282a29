package bpmn

var (
	_ Element = (*CallActivity)(nil)
	_ Element = (*SubProcess)(nil)
)

type CallActivity struct {
	ModelMeta
}

func (a *CallActivity) GetShape() Shape { return CallActivityShape }

// SubProcess is an embedded process. An event sub-process is a SubProcess
// with TriggeredByEvent set; it has no incoming or outgoing flows.
type SubProcess struct {
	ModelMeta
	IsExpanded       bool
	TriggeredByEvent bool
}

func (p *SubProcess) GetShape() Shape { return SubProcessShape }
