package router

import (
	"github.com/Handsol/nbc-final-project/handlers"
	"github.com/Handsol/nbc-final-project/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, authHandler *handlers.AuthHandler, todoHandler *handlers.TodoHandler, habitHandler *handlers.HabitHandler) {
	app.Get("/health", handlers.HandleHealthCheck)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.RegisterHandler)
	auth.Post("/login", authHandler.LoginHandler)
	auth.Post("/google", authHandler.GoogleLoginHandler)
	auth.Get("/me", middleware.SessionMiddleware, authHandler.MeHandler)

	// Đọc công khai, ghi cần đăng nhập; middleware chỉ gắn session,
	// tầng service quyết định quyền cho từng thao tác
	api := app.Group("/api", middleware.SessionMiddleware)

	api.Get("/todos", todoHandler.HandleAllTodos)
	api.Post("/todos", todoHandler.HandleCreateTodo)
	api.Get("/todos/:id", todoHandler.HandleGetOneTodo)
	api.Patch("/todos/:id", todoHandler.HandleUpdateTodo)
	api.Delete("/todos/:id", todoHandler.HandleDeleteTodo)

	api.Get("/habits", habitHandler.HandleAllHabits)
	api.Post("/habits", habitHandler.HandleCreateHabit)
	api.Get("/habits/:id", habitHandler.HandleGetOneHabit)
	api.Patch("/habits/:id", habitHandler.HandleUpdateHabit)
	api.Delete("/habits/:id", habitHandler.HandleDeleteHabit)
}
