package app

import (
	"os"

	"github.com/Handsol/nbc-final-project/auth"
	"github.com/Handsol/nbc-final-project/config"
	"github.com/Handsol/nbc-final-project/database"
	"github.com/Handsol/nbc-final-project/handlers"
	"github.com/Handsol/nbc-final-project/router"
	"github.com/Handsol/nbc-final-project/services"
	"github.com/Handsol/nbc-final-project/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	// Khởi động PostgreSQL
	err = database.StartPostgreSQL()
	if err != nil {
		return err
	}

	// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
	defer database.ClosePostgreSQL()

	// Google sign-in chỉ bật khi có GOOGLE_CLIENT_ID
	var googleVerifier *auth.GoogleVerifier
	if os.Getenv("GOOGLE_CLIENT_ID") != "" {
		googleVerifier, err = auth.NewGoogleVerifier()
		if err != nil {
			return err
		}
	}

	store := storage.NewPostgresStore(database.GetDB())
	authHandler := handlers.NewAuthHandler(store, googleVerifier)
	todoHandler := handlers.NewTodoHandler(services.NewTodoService(store))
	habitHandler := handlers.NewHabitHandler(services.NewHabitService(store))

	// Tạo ứng dụng Fiber
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",                             // Cho phép tất cả các nguồn (có thể điều chỉnh)
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS", // Các phương thức được phép
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app, authHandler, todoHandler, habitHandler)

	// Đính kèm Swagger
	config.AddSwaggerRoutes(app)

	// Lấy port từ biến môi trường và bắt đầu lắng nghe kết nối
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000" // Giá trị mặc định nếu PORT không được thiết lập
	}

	// Lắng nghe trên cổng chỉ định
	return app.Listen(":" + port)
}
