package bpmn

var _ Element = (*DataStoreReference)(nil)

type DataStoreReference struct {
	ModelMeta
}

func (s *DataStoreReference) GetShape() Shape { return DataStoreShape }
