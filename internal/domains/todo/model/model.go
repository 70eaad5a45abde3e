package model

import "tasker/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldUserID    = "user_id"
)

type Todo struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
	UserID    string `db:"user_id"`
	model.Metadata
}
