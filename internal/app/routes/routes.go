package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/app/controllers"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public read routes ---
	v1.GET("/students", studentController.ListStudents)
	v1.GET("/teachers", teacherController.ListTeachers)
	v1.GET("/courses", courseController.ListCourses)
	v1.GET("/courses/:name", courseController.GetCourse)
	v1.GET("/courses/:name/students", courseController.GetRoster)

	// --- Registrar routes ---
	registrar := v1.Group("")
	registrar.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleRegistrar))
	{
		registrar.POST("/students", studentController.EnrollStudent)
		registrar.POST("/students/graduate", studentController.GraduateStudent)

		registrar.POST("/teachers", teacherController.HireTeacher)
		registrar.POST("/teachers/fire", teacherController.FireTeacher)

		registrar.POST("/courses", courseController.OfferCourse)
		registrar.DELETE("/courses/:name", courseController.CancelCourse)
		registrar.POST("/courses/:name/students", courseController.AddStudent)
		registrar.POST("/courses/:name/students/remove", courseController.RemoveStudent)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
