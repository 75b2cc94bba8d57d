package models

import (
	"fmt"
	"slices"

	"github.com/yigit/campus/internal/pkg/apperrors"
)

var _ Facility = (*University)(nil)

// University keeps three independent sequences. Nothing links them: removing
// a student from the university leaves them on every course roster.
type University struct {
	students []Student
	teachers []Teacher
	courses  []*Course
}

// NewUniversity creates a university with empty rosters and catalog
func NewUniversity() *University {
	return &University{
		students: make([]Student, 0),
		teachers: make([]Teacher, 0),
		courses:  make([]*Course, 0),
	}
}

// EnrollPerson adds a student to the university roster
func (u *University) EnrollPerson(student Student) {
	u.students = append(u.students, student)
}

// GraduatePerson removes the first matching student from the roster
func (u *University) GraduatePerson(student Student) error {
	i := slices.Index(u.students, student)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, student.Name)
	}
	u.students = slices.Delete(u.students, i, i+1)
	return nil
}

// HireTeacher adds a teacher to the staff
func (u *University) HireTeacher(teacher Teacher) {
	u.teachers = append(u.teachers, teacher)
}

// FireTeacher removes the first matching teacher from the staff
func (u *University) FireTeacher(teacher Teacher) error {
	i := slices.Index(u.teachers, teacher)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTeacherNotFound, teacher.Name)
	}
	u.teachers = slices.Delete(u.teachers, i, i+1)
	return nil
}

// OfferCourse adds a course to the catalog
func (u *University) OfferCourse(course *Course) {
	u.courses = append(u.courses, course)
}

// CancelCourse removes the first catalog entry equal to course
func (u *University) CancelCourse(course *Course) error {
	i := slices.IndexFunc(u.courses, course.Equal)
	if i < 0 {
		name := "<nil>"
		if course != nil {
			name = course.Name
		}
		return fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, name)
	}
	u.courses = slices.Delete(u.courses, i, i+1)
	return nil
}

// FindCourse returns the first offered course with the given name
func (u *University) FindCourse(name string) (*Course, error) {
	for _, c := range u.courses {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, name)
}

// Students returns a copy of the student roster
func (u *University) Students() []Student {
	return slices.Clone(u.students)
}

// Teachers returns a copy of the teaching staff
func (u *University) Teachers() []Teacher {
	return slices.Clone(u.teachers)
}

// Courses returns a copy of the catalog. The courses themselves are shared.
func (u *University) Courses() []*Course {
	return slices.Clone(u.courses)
}
