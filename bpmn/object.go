package bpmn

var _ Element = (*DataObjectReference)(nil)

type DataObjectReference struct {
	ModelMeta
}

func (o *DataObjectReference) GetShape() Shape { return DataObjectShape }
