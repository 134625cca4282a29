package bpmn

var (
	_ Element = (*Task)(nil)
	_ Element = (*ScriptTask)(nil)
	_ Element = (*UserTask)(nil)
	_ Element = (*ServiceTask)(nil)
)

type Task struct {
	ModelMeta
}

func (t *Task) GetShape() Shape { return TaskShape }

type ScriptTask struct {
	ModelMeta
}

func (t *ScriptTask) GetShape() Shape { return ScriptTaskShape }

type UserTask struct {
	ModelMeta
}

func (t *UserTask) GetShape() Shape { return UserTaskShape }

type ServiceTask struct {
	ModelMeta
}

func (t *ServiceTask) GetShape() Shape { return ServiceTaskShape }

// IsActivity reports whether the element is drawn as an activity box.
func IsActivity(elem Element) bool {
	switch elem.GetShape() {
	case TaskShape, ScriptTaskShape, UserTaskShape, ServiceTaskShape, CallActivityShape, SubProcessShape:
		return true
	default:
		return false
	}
}
