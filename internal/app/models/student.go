package models

// Student is an immutable value; two students are the same student when all fields match.
type Student struct {
	Person         `yaml:",inline"`
	Specialization string `json:"specialization" yaml:"specialization" example:"CS"`
}

// NewStudent creates a Student
func NewStudent(name string, age int, specialization string) Student {
	return Student{
		Person:         Person{Name: name, Age: age},
		Specialization: specialization,
	}
}
