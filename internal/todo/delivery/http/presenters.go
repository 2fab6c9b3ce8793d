package http

import (
	"focus-dashboard/internal/model"
	"focus-dashboard/internal/todo"
)

type createReq struct {
	Title    string `json:"title"    binding:"required,max=255"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{Title: r.Title, Priority: model.Priority(r.Priority)}
}

type todoResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{ID: t.ID, Title: t.Title, Completed: t.Completed, Priority: string(t.Priority)}
}

type listResp struct {
	Todos        []todoResp `json:"todos"`
	Total        int        `json:"total"`
	PendingCount int        `json:"pending_count"`
}

func newListResp(out todo.ListOutput) listResp {
	items := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		items[i] = newTodoResp(t)
	}
	return listResp{Todos: items, Total: out.Total, PendingCount: out.PendingCount}
}

type itemResp struct {
	Todo todoResp `json:"todo"`
}
