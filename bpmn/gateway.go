package bpmn

var (
	_ Element = (*ExclusiveGateway)(nil)
	_ Element = (*InclusiveGateway)(nil)
	_ Element = (*ParallelGateway)(nil)
)

type ExclusiveGateway struct {
	ModelMeta
}

func (g *ExclusiveGateway) GetShape() Shape { return ExclusiveGatewayShape }

type InclusiveGateway struct {
	ModelMeta
}

func (g *InclusiveGateway) GetShape() Shape { return InclusiveGatewayShape }

type ParallelGateway struct {
	ModelMeta
}

func (g *ParallelGateway) GetShape() Shape { return ParallelGatewayShape }

func IsGateway(elem Element) bool {
	switch elem.GetShape() {
	case ExclusiveGatewayShape, InclusiveGatewayShape, ParallelGatewayShape:
		return true
	default:
		return false
	}
}
