package tool

import (
	openai "github.com/sashabaranov/go-openai"
)

const (
	NameCreateTodo           = "create_todo"
	NameListTodos            = "list_todos"
	NameCompleteTodo         = "complete_todo"
	NameUncompleteTodo       = "uncomplete_todo"
	NameDeleteTodo           = "delete_todo"
	NameDeleteCompletedTodos = "delete_completed_todos"
	NameUpdateTodo           = "update_todo"
	NameSearchTodos          = "search_todos"
)

const (
	paramTitle            = "title"
	paramIncludeCompleted = "include_completed"
	paramIdentifier       = "todo_identifier"
	paramNewTitle         = "new_title"
	paramQuery            = "query"
)

const (
	paramTypeString  = "string"
	paramTypeBoolean = "boolean"
)

// Param describes one parameter of a tool's JSON schema.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     any
}

// Descriptor is one entry of the static tool catalog exposed to the model.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
}

var catalog = []Descriptor{
	{
		Name:        NameCreateTodo,
		Description: "Create a new todo item. Use this when the user wants to add a new task, reminder, or item to their list.",
		Params: []Param{
			{Name: paramTitle, Type: paramTypeString, Description: "The title or description of the todo item to create", Required: true},
		},
	},
	{
		Name:        NameListTodos,
		Description: "List all todos for the user. Use this when the user wants to see their tasks, view their list, or check what they have to do.",
		Params: []Param{
			{Name: paramIncludeCompleted, Type: paramTypeBoolean, Description: "Whether to include completed todos in the list. Default is true.", Default: true},
		},
	},
	{
		Name:        NameCompleteTodo,
		Description: "Mark a todo as completed/done. Use this when the user says they finished, completed, or done with a task.",
		Params: []Param{
			{Name: paramIdentifier, Type: paramTypeString, Description: "The title (or part of it) or ID of the todo to mark as complete", Required: true},
		},
	},
	{
		Name:        NameUncompleteTodo,
		Description: "Mark a todo as not completed (reopen it). Use this when the user wants to undo completion or reopen a task.",
		Params: []Param{
			{Name: paramIdentifier, Type: paramTypeString, Description: "The title (or part of it) or ID of the todo to mark as not complete", Required: true},
		},
	},
	{
		Name:        NameDeleteTodo,
		Description: "Delete a specific todo item. Use this when the user wants to remove or delete a single task.",
		Params: []Param{
			{Name: paramIdentifier, Type: paramTypeString, Description: "The title (or part of it) or ID of the todo to delete", Required: true},
		},
	},
	{
		Name:        NameDeleteCompletedTodos,
		Description: "Delete all completed todos. Use this when the user wants to clear, remove, or clean up all their finished tasks.",
	},
	{
		Name:        NameUpdateTodo,
		Description: "Update or rename a todo's title. Use this when the user wants to change, edit, or rename a task.",
		Params: []Param{
			{Name: paramIdentifier, Type: paramTypeString, Description: "The current title (or part of it) or ID of the todo to update", Required: true},
			{Name: paramNewTitle, Type: paramTypeString, Description: "The new title for the todo", Required: true},
		},
	},
	{
		Name:        NameSearchTodos,
		Description: "Search for todos by keyword. Use this when the user wants to find specific tasks.",
		Params: []Param{
			{Name: paramQuery, Type: paramTypeString, Description: "The search keyword to find in todo titles", Required: true},
		},
	},
}

// Definitions renders the catalog as OpenAI function-calling tool definitions.
func Definitions() []openai.Tool {
	defs := make([]openai.Tool, len(catalog))

	for i, desc := range catalog {
		properties := map[string]any{}
		required := []string{}

		for _, param := range desc.Params {
			property := map[string]any{
				"type":        param.Type,
				"description": param.Description,
			}

			if param.Default != nil {
				property["default"] = param.Default
			}

			properties[param.Name] = property

			if param.Required {
				required = append(required, param.Name)
			}
		}

		defs[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        desc.Name,
				Description: desc.Description,
				Parameters: map[string]any{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			},
		}
	}

	return defs
}

func descriptorByName(name string) (Descriptor, bool) {
	for _, desc := range catalog {
		if desc.Name == name {
			return desc, true
		}
	}

	return Descriptor{}, false
}
