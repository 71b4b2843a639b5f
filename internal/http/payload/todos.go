package payload

import (
	"nextup/internal/core"

	"github.com/jellydator/validation"
)

type NewTodoRequest struct {
	Task      string `json:"task"`
	Completed *bool  `json:"completed"`
}

func (t NewTodoRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Task, validation.Required),
		// completed must be present, never implicitly null
		validation.Field(&t.Completed, validation.NotNil),
	)
}

func (t NewTodoRequest) ToMessage() core.CreateTodoMessage {
	msg := core.CreateTodoMessage{
		Task: t.Task,
	}
	if t.Completed != nil {
		msg.Completed = *t.Completed
	}
	return msg
}

// UpdateTodoRequest carries a partial update; absent fields keep their
// stored values.
type UpdateTodoRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

func (t UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Task, validation.NilOrNotEmpty),
	)
}

func (t UpdateTodoRequest) ToPatch() core.TodoPatch {
	return core.TodoPatch{
		Task:      t.Task,
		Completed: t.Completed,
	}
}
