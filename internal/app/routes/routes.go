// Package routes wires controllers onto the gin router.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adeolu/campusreg/internal/app/controllers"
	"github.com/adeolu/campusreg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public read routes ---
	users := v1.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
	}

	profiles := v1.Group("/profiles")
	{
		profiles.GET("/students", profileController.ListStudentProfiles)
		profiles.GET("/councillors", profileController.ListCouncillorProfiles)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
	}

	registrations := v1.Group("/registrations")
	{
		registrations.GET("", registrationController.ListRegistrations)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.PUT("/auth/password", authController.ChangePassword)
		authenticated.PUT("/auth/account", authController.UpdateAccount)

		authenticated.POST("/profiles/students", profileController.CreateStudentProfile)
		authenticated.GET("/profiles/students/mine", profileController.GetMyStudentProfile)
		authenticated.GET("/profiles/students/:id", profileController.GetStudentProfile)
		authenticated.PUT("/profiles/students/:id", profileController.UpdateStudentProfile)
		authenticated.PUT("/profiles/students/:id/picture", profileController.UploadStudentProfilePicture)

		authenticated.POST("/profiles/councillors", profileController.CreateCouncillorProfile)
		authenticated.GET("/profiles/councillors/mine", profileController.GetMyCouncillorProfile)
		authenticated.GET("/profiles/councillors/:id", profileController.GetCouncillorProfile)
		authenticated.PUT("/profiles/councillors/:id", profileController.UpdateCouncillorProfile)
		authenticated.PUT("/profiles/councillors/:id/picture", profileController.UploadCouncillorProfilePicture)

		authenticated.POST("/registrations", registrationController.RegisterForCourse)
		authenticated.GET("/registrations/mine", registrationController.ListMyRegistrations)
		authenticated.GET("/registrations/:id", registrationController.GetRegistration)
		authenticated.DELETE("/registrations/:id", registrationController.DropRegistration)

		// Admin-only catalog management
		adminProtected := authenticated.Group("/courses")
		adminProtected.Use(authMiddleware.AdminRequired())
		{
			adminProtected.POST("", courseController.CreateCourse)
		}
	}
}
