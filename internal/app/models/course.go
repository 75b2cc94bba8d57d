package models

import (
	"fmt"
	"slices"

	"github.com/yigit/campus/internal/pkg/apperrors"
)

// Course is a named offering taught by one teacher. The teacher is referenced,
// not owned: the same teacher may be assigned to any number of courses.
type Course struct {
	Name    string
	Teacher Teacher

	students []Student
}

// NewCourse creates a course with its own empty roster
func NewCourse(name string, teacher Teacher) *Course {
	return &Course{
		Name:     name,
		Teacher:  teacher,
		students: make([]Student, 0),
	}
}

// EnrolledStudents returns a copy of the roster in insertion order
func (c *Course) EnrolledStudents() []Student {
	return slices.Clone(c.students)
}

// AddStudent appends the student to the roster. Duplicates are kept.
func (c *Course) AddStudent(student Student) {
	c.students = append(c.students, student)
}

// RemoveStudent removes the first roster entry equal to student
func (c *Course) RemoveStudent(student Student) error {
	i := slices.Index(c.students, student)
	if i < 0 {
		return fmt.Errorf("%w: %s is not enrolled in %s", apperrors.ErrStudentNotFound, student.Name, c.Name)
	}
	c.students = slices.Delete(c.students, i, i+1)
	return nil
}

// Equal reports whether both courses have the same name, teacher and roster
func (c *Course) Equal(other *Course) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.Name == other.Name &&
		c.Teacher == other.Teacher &&
		slices.Equal(c.students, other.students)
}
