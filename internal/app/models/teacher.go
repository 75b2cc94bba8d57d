package models

// Teacher is an immutable value; two teachers are the same teacher when all fields match.
type Teacher struct {
	Person     `yaml:",inline"`
	Department string `json:"department" yaml:"department" example:"CS"`
}

// NewTeacher creates a Teacher
func NewTeacher(name string, age int, department string) Teacher {
	return Teacher{
		Person:     Person{Name: name, Age: age},
		Department: department,
	}
}
