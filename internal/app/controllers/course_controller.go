package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
)

// CourseController handles the catalog and course rosters. Courses are
// addressed by name; when several share a name the first offered one wins.
type CourseController struct {
	universityService services.UniversityService
}

// NewCourseController creates a new CourseController
func NewCourseController(universityService services.UniversityService) *CourseController {
	return &CourseController{
		universityService: universityService,
	}
}

// ListCourses returns the catalog
// @Summary List offered courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.universityService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// GetCourse returns one course with its roster
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.universityService.GetCourse(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, ""))
}

// OfferCourse adds a course to the catalog
// @Summary Offer a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OfferCourseRequest true "Course"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /courses [post]
func (c *CourseController) OfferCourse(ctx *gin.Context) {
	var req dto.OfferCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.universityService.OfferCourse(ctx.Request.Context(), req.Name, req.Teacher.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course offered"))
}

// CancelCourse removes a course from the catalog
// @Summary Cancel a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name} [delete]
func (c *CourseController) CancelCourse(ctx *gin.Context) {
	if err := c.universityService.CancelCourse(ctx.Request.Context(), ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course cancelled"))
}

// GetRoster returns the students enrolled in a course
// @Summary List course roster
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name}/students [get]
func (c *CourseController) GetRoster(ctx *gin.Context) {
	students, err := c.universityService.CourseRoster(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponses(students), ""))
}

// AddStudent appends a student to a course roster
// @Summary Add a student to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param request body dto.StudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name}/students [post]
func (c *CourseController) AddStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.universityService.AddStudentToCourse(ctx.Request.Context(), ctx.Param("name"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Student added"))
}

// RemoveStudent removes the first matching student from a course roster
// @Summary Remove a student from a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Course name"
// @Param request body dto.StudentRequest true "Student"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Router /courses/{name}/students/remove [post]
func (c *CourseController) RemoveStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.universityService.RemoveStudentFromCourse(ctx.Request.Context(), ctx.Param("name"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Student removed"))
}
