package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
)

// TeacherController handles the teaching staff
type TeacherController struct {
	universityService services.UniversityService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(universityService services.UniversityService) *TeacherController {
	return &TeacherController{
		universityService: universityService,
	}
}

// ListTeachers returns the staff
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherResponse}
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.universityService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTeacherResponses(teachers), ""))
}

// HireTeacher adds a teacher to the staff
// @Summary Hire a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TeacherRequest true "Teacher"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /teachers [post]
func (c *TeacherController) HireTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	teacher := req.ToModel()
	if err := c.universityService.HireTeacher(ctx.Request.Context(), teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewTeacherResponse(teacher), "Teacher hired"))
}

// FireTeacher removes a teacher from the staff
// @Summary Fire a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TeacherRequest true "Teacher"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/fire [post]
func (c *TeacherController) FireTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.universityService.FireTeacher(ctx.Request.Context(), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Teacher fired"))
}
