package handlers

import (
	"github.com/Handsol/nbc-final-project/middleware"
	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/services"
	"github.com/gofiber/fiber/v2"
)

// HabitHandler dịch request HTTP sang lời gọi HabitService
type HabitHandler struct {
	Service *services.HabitService
}

func NewHabitHandler(service *services.HabitService) *HabitHandler {
	return &HabitHandler{Service: service}
}

// HandleAllHabits lấy tất cả Habits, ai cũng xem được
//
//	@Summary	List all habits
//	@Tags		habits
//	@Produce	json
//	@Success	200	{array}	models.Habit
//	@Router		/api/habits [get]
func (h *HabitHandler) HandleAllHabits(c *fiber.Ctx) error {
	habits, err := h.Service.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, "habit", "failed to fetch habits")
	}
	return c.Status(200).JSON(habits)
}

// HandleGetOneHabit lấy một Habit theo ID
//
//	@Summary	Get a habit
//	@Tags		habits
//	@Produce	json
//	@Param		id	path		string	true	"Habit ID"
//	@Success	200	{object}	models.Habit
//	@Failure	404	{object}	map[string]string
//	@Router		/api/habits/{id} [get]
func (h *HabitHandler) HandleGetOneHabit(c *fiber.Ctx) error {
	habit, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "habit", "failed to fetch habit")
	}
	return c.Status(200).JSON(habit)
}

// HandleCreateHabit tạo mới một Habit, cần đăng nhập
//
//	@Summary	Create a habit
//	@Tags		habits
//	@Accept		json
//	@Produce	json
//	@Param		habit	body		models.CreateHabitRequest	true	"New habit"
//	@Success	201		{object}	models.Habit
//	@Failure	400		{object}	map[string]string
//	@Failure	403		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/api/habits [post]
func (h *HabitHandler) HandleCreateHabit(c *fiber.Ctx) error {
	// Kiểm tra đăng nhập trước khi parse body
	session := middleware.SessionFromCtx(c)
	if !session.Authenticated() {
		return serviceError(c, services.ErrUnauthenticated, "habit", "failed to create habit")
	}

	req := new(models.CreateHabitRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	habit, err := h.Service.Create(c.UserContext(), session, *req)
	if err != nil {
		return serviceError(c, err, "habit", "failed to create habit")
	}
	return c.Status(201).JSON(habit)
}

// HandleUpdateHabit cập nhật một phần Habit, chỉ chủ sở hữu
//
//	@Summary	Patch a habit
//	@Tags		habits
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Habit ID"
//	@Param		habit	body		models.UpdateHabitRequest	true	"Fields to change"
//	@Success	200		{object}	models.Habit
//	@Failure	400		{object}	map[string]string
//	@Failure	403		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/api/habits/{id} [patch]
func (h *HabitHandler) HandleUpdateHabit(c *fiber.Ctx) error {
	// Kiểm tra đăng nhập trước khi parse body
	session := middleware.SessionFromCtx(c)
	if !session.Authenticated() {
		return serviceError(c, services.ErrUnauthenticated, "habit", "failed to update habit")
	}

	req := new(models.UpdateHabitRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	habit, err := h.Service.Update(c.UserContext(), session, c.Params("id"), *req)
	if err != nil {
		return serviceError(c, err, "habit", "failed to update habit")
	}
	return c.Status(200).JSON(habit)
}

// HandleDeleteHabit xóa vĩnh viễn một Habit, chỉ chủ sở hữu
//
//	@Summary	Delete a habit
//	@Tags		habits
//	@Produce	json
//	@Param		id	path		string	true	"Habit ID"
//	@Success	200	{object}	map[string]string
//	@Failure	403	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/api/habits/{id} [delete]
func (h *HabitHandler) HandleDeleteHabit(c *fiber.Ctx) error {
	err := h.Service.Delete(c.UserContext(), middleware.SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "habit", "failed to delete habit")
	}
	return c.Status(200).JSON(fiber.Map{"message": "habit deleted successfully"})
}
