package bpmn

var (
	_ Element = (*Participant)(nil)
	_ Element = (*Group)(nil)
)

// Participant is a pool. IsExpanded is false for a collapsed (black box) pool.
type Participant struct {
	ModelMeta
	IsExpanded bool
}

func (p *Participant) GetShape() Shape { return ParticipantShape }

type Group struct {
	ModelMeta
}

func (g *Group) GetShape() Shape { return GroupShape }
