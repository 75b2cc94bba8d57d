package dto

import "github.com/yigit/campus/internal/app/models"

// StudentRequest identifies a student by value
type StudentRequest struct {
	Name           string `json:"name" binding:"required" example:"Alice"`
	Age            int    `json:"age" binding:"gte=0" example:"20"`
	Specialization string `json:"specialization" example:"CS"`
}

// ToModel converts the request into the value the roster stores
func (r StudentRequest) ToModel() models.Student {
	return models.NewStudent(r.Name, r.Age, r.Specialization)
}

// StudentResponse represents a student on a roster
type StudentResponse struct {
	Name           string `json:"name" example:"Alice"`
	Age            int    `json:"age" example:"20"`
	Specialization string `json:"specialization" example:"CS"`
}

// NewStudentResponse creates a StudentResponse from a model
func NewStudentResponse(s models.Student) StudentResponse {
	return StudentResponse{
		Name:           s.Name,
		Age:            s.Age,
		Specialization: s.Specialization,
	}
}

// NewStudentResponses converts a roster, keeping its order
func NewStudentResponses(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
