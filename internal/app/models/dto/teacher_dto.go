package dto

import "github.com/yigit/campus/internal/app/models"

// TeacherRequest identifies a teacher by value
type TeacherRequest struct {
	Name       string `json:"name" binding:"required" example:"Bob"`
	Age        int    `json:"age" binding:"gte=0" example:"40"`
	Department string `json:"department" example:"CS"`
}

// ToModel converts the request into the value the staff list stores
func (r TeacherRequest) ToModel() models.Teacher {
	return models.NewTeacher(r.Name, r.Age, r.Department)
}

// TeacherResponse represents a member of the teaching staff
type TeacherResponse struct {
	Name       string `json:"name" example:"Bob"`
	Age        int    `json:"age" example:"40"`
	Department string `json:"department" example:"CS"`
}

// NewTeacherResponse creates a TeacherResponse from a model
func NewTeacherResponse(t models.Teacher) TeacherResponse {
	return TeacherResponse{
		Name:       t.Name,
		Age:        t.Age,
		Department: t.Department,
	}
}

// NewTeacherResponses converts the staff list, keeping its order
func NewTeacherResponses(teachers []models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, NewTeacherResponse(t))
	}
	return out
}
