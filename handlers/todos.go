package handlers

import (
	"github.com/Handsol/nbc-final-project/middleware"
	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/services"
	"github.com/gofiber/fiber/v2"
)

// TodoHandler dịch request HTTP sang lời gọi TodoService
type TodoHandler struct {
	Service *services.TodoService
}

func NewTodoHandler(service *services.TodoService) *TodoHandler {
	return &TodoHandler{Service: service}
}

// HandleAllTodos lấy tất cả Todos, ai cũng xem được
//
//	@Summary	List all todos
//	@Tags		todos
//	@Produce	json
//	@Success	200	{array}	models.Todo
//	@Router		/api/todos [get]
func (h *TodoHandler) HandleAllTodos(c *fiber.Ctx) error {
	todos, err := h.Service.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, "todo", "failed to fetch todos")
	}
	return c.Status(200).JSON(todos)
}

// HandleGetOneTodo lấy một Todo theo ID
//
//	@Summary	Get a todo
//	@Tags		todos
//	@Produce	json
//	@Param		id	path		string	true	"Todo ID"
//	@Success	200	{object}	models.Todo
//	@Failure	404	{object}	map[string]string
//	@Router		/api/todos/{id} [get]
func (h *TodoHandler) HandleGetOneTodo(c *fiber.Ctx) error {
	todo, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "todo", "failed to fetch todo")
	}
	return c.Status(200).JSON(todo)
}

// HandleCreateTodo tạo mới một Todo, cần đăng nhập
//
//	@Summary	Create a todo
//	@Tags		todos
//	@Accept		json
//	@Produce	json
//	@Param		todo	body		models.CreateTodoRequest	true	"New todo"
//	@Success	201		{object}	models.Todo
//	@Failure	400		{object}	map[string]string
//	@Failure	403		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/api/todos [post]
func (h *TodoHandler) HandleCreateTodo(c *fiber.Ctx) error {
	// Kiểm tra đăng nhập trước khi parse body
	session := middleware.SessionFromCtx(c)
	if !session.Authenticated() {
		return serviceError(c, services.ErrUnauthenticated, "todo", "failed to create todo")
	}

	req := new(models.CreateTodoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	todo, err := h.Service.Create(c.UserContext(), session, *req)
	if err != nil {
		return serviceError(c, err, "todo", "failed to create todo")
	}
	return c.Status(201).JSON(todo)
}

// HandleUpdateTodo cập nhật một phần Todo, chỉ chủ sở hữu
//
//	@Summary	Patch a todo
//	@Tags		todos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Todo ID"
//	@Param		todo	body		models.UpdateTodoRequest	true	"Fields to change"
//	@Success	200		{object}	models.Todo
//	@Failure	403		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/api/todos/{id} [patch]
func (h *TodoHandler) HandleUpdateTodo(c *fiber.Ctx) error {
	// Kiểm tra đăng nhập trước khi parse body
	session := middleware.SessionFromCtx(c)
	if !session.Authenticated() {
		return serviceError(c, services.ErrUnauthenticated, "todo", "failed to update todo")
	}

	req := new(models.UpdateTodoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	todo, err := h.Service.Update(c.UserContext(), session, c.Params("id"), *req)
	if err != nil {
		return serviceError(c, err, "todo", "failed to update todo")
	}
	return c.Status(200).JSON(todo)
}

// HandleDeleteTodo xóa vĩnh viễn một Todo, chỉ chủ sở hữu
//
//	@Summary	Delete a todo
//	@Tags		todos
//	@Produce	json
//	@Param		id	path		string	true	"Todo ID"
//	@Success	200	{object}	map[string]string
//	@Failure	403	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/api/todos/{id} [delete]
func (h *TodoHandler) HandleDeleteTodo(c *fiber.Ctx) error {
	err := h.Service.Delete(c.UserContext(), middleware.SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "todo", "failed to delete todo")
	}
	return c.Status(200).JSON(fiber.Map{"message": "todo deleted successfully"})
}
