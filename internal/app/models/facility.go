package models

// Facility is anything that can keep a student roster, a teaching staff and
// a course catalog. Removal-style operations return a not-found error when
// the value is absent.
type Facility interface {
	EnrollPerson(student Student)
	GraduatePerson(student Student) error
	HireTeacher(teacher Teacher)
	FireTeacher(teacher Teacher) error
	OfferCourse(course *Course)
	CancelCourse(course *Course) error
}
