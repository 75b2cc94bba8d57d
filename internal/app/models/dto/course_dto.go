package dto

import "github.com/yigit/campus/internal/app/models"

// OfferCourseRequest represents course creation data
type OfferCourseRequest struct {
	Name    string         `json:"name" binding:"required" example:"Algorithms"`
	Teacher TeacherRequest `json:"teacher"`
}

// CourseResponse is a snapshot of a course and its roster
type CourseResponse struct {
	Name     string            `json:"name" example:"Algorithms"`
	Teacher  TeacherResponse   `json:"teacher"`
	Students []StudentResponse `json:"students"`
}

// NewCourseResponse snapshots a course
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		Name:     c.Name,
		Teacher:  NewTeacherResponse(c.Teacher),
		Students: NewStudentResponses(c.EnrolledStudents()),
	}
}

// NewCourseResponses snapshots the catalog, keeping its order
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
