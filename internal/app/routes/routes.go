package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/medm/attendance/internal/app/controllers"
	"github.com/medm/attendance/internal/app/policy"
	"github.com/medm/attendance/internal/middleware"
)

// SetupRouter configures all application routes. Every protected route
// carries the policy operation it is guarded by, so the route table and
// the authorization table read side by side.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.AuthController.Register)
		auth.POST("/login", ctrl.AuthController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	roles := authenticated.Group("/roles")
	{
		roles.GET("", authMiddleware.RequireOperation(policy.OpListRoles), ctrl.RoleController.GetAllRoles)
		roles.POST("", authMiddleware.RequireOperation(policy.OpCreateRole), ctrl.RoleController.CreateRole)
		roles.GET("/:id", authMiddleware.RequireOperation(policy.OpGetRole), ctrl.RoleController.GetRoleByID)
		roles.PUT("/:id", authMiddleware.RequireOperation(policy.OpUpdateRole), ctrl.RoleController.UpdateRole)
		roles.DELETE("/:id", authMiddleware.RequireOperation(policy.OpDeleteRole), ctrl.RoleController.DeleteRole)
	}

	lectures := authenticated.Group("/lectures")
	{
		lectures.GET("", authMiddleware.RequireOperation(policy.OpListLectures), ctrl.LectureController.GetAllLectures)
		lectures.POST("", authMiddleware.RequireOperation(policy.OpCreateLecture), ctrl.LectureController.CreateLecture)
		lectures.GET("/:id", authMiddleware.RequireOperation(policy.OpGetLecture), ctrl.LectureController.GetLectureByID)
		lectures.PUT("/:id", authMiddleware.RequireOperation(policy.OpUpdateLecture), ctrl.LectureController.UpdateLecture)
		lectures.DELETE("/:id", authMiddleware.RequireOperation(policy.OpDeleteLecture), ctrl.LectureController.DeleteLecture)
		lectures.GET("/:id/users", authMiddleware.RequireOperation(policy.OpListAttendees), ctrl.LectureController.GetAttendees)
		lectures.POST("/:id/users", authMiddleware.RequireOperation(policy.OpEnroll), ctrl.LectureController.EnrollUser)
	}

	users := authenticated.Group("/users")
	{
		users.GET("", authMiddleware.RequireOperation(policy.OpListUsers), ctrl.UserController.GetAllUsers)
		users.POST("", authMiddleware.RequireOperation(policy.OpCreateUser), ctrl.UserController.CreateUser)
		users.GET("/:id", authMiddleware.RequireOperation(policy.OpGetUser), ctrl.UserController.GetUserByID)
		users.PUT("/:id", authMiddleware.RequireOperation(policy.OpUpdateUser), ctrl.UserController.UpdateUser)
		users.PUT("/:id/password", authMiddleware.RequireOperation(policy.OpUpdatePassword), ctrl.UserController.UpdatePassword)
		users.DELETE("/:id", authMiddleware.RequireOperation(policy.OpDeleteUser), ctrl.UserController.DeleteUser)
		users.GET("/:id/lectures", authMiddleware.RequireOperation(policy.OpListUserLectures), ctrl.UserController.GetUserLectures)
	}
}
