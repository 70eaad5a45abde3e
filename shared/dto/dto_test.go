package dto_test

import (
	"tasker/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq operator with table",
			filter: dto.Filter{
				Field:    "user_id",
				Value:    "user-1",
				Operator: dto.FilterOperatorEq,
				Table:    "todos",
			},
			wantWhere: "todos.user_id = :user_id",
			wantArgs:  map[string]any{"user_id": "user-1"},
		},
		{
			name: "like operator is case insensitive",
			filter: dto.Filter{
				Field:    "title",
				Value:    "Milk",
				Operator: dto.FilterOperatorLike,
				Table:    "todos",
			},
			wantWhere: "LOWER(todos.title) LIKE LOWER(:title) ",
			wantArgs:  map[string]any{"title": "%Milk%"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "title",
				Value:    "x",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "user_id", Value: "user-1", Operator: dto.FilterOperatorEq, Table: "todos"},
			dto.Filter{Field: "completed", Value: false, Operator: dto.FilterOperatorEq, Table: "todos"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(todos.user_id = :user_id AND todos.completed = :completed)", where)
	assert.Equal(t, map[string]any{"user_id": "user-1", "completed": false}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
