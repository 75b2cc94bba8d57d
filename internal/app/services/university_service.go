package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// UniversityService defines the interface for facility operations exposed to handlers
type UniversityService interface {
	EnrollStudent(ctx context.Context, student models.Student) error
	GraduateStudent(ctx context.Context, student models.Student) error
	ListStudents(ctx context.Context) ([]models.Student, error)

	HireTeacher(ctx context.Context, teacher models.Teacher) error
	FireTeacher(ctx context.Context, teacher models.Teacher) error
	ListTeachers(ctx context.Context) ([]models.Teacher, error)

	OfferCourse(ctx context.Context, name string, teacher models.Teacher) (*dto.CourseResponse, error)
	CancelCourse(ctx context.Context, name string) error
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
	GetCourse(ctx context.Context, name string) (*dto.CourseResponse, error)

	AddStudentToCourse(ctx context.Context, courseName string, student models.Student) (*dto.CourseResponse, error)
	RemoveStudentFromCourse(ctx context.Context, courseName string, student models.Student) (*dto.CourseResponse, error)
	CourseRoster(ctx context.Context, courseName string) ([]models.Student, error)
}

// universityServiceImpl implements the UniversityService interface.
// University itself is not safe for concurrent use; mu serializes every call
// and only snapshots leave the lock.
type universityServiceImpl struct {
	mu         sync.Mutex
	university *models.University
	logger     zerolog.Logger
}

// NewUniversityService creates a new university service instance
func NewUniversityService(university *models.University, logger zerolog.Logger) UniversityService {
	return &universityServiceImpl{
		university: university,
		logger:     logger.With().Str("component", "university_service").Logger(),
	}
}

// lock acquires the university unless ctx is already done
func (s *universityServiceImpl) lock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	return nil
}

// EnrollStudent adds a student to the university roster
func (s *universityServiceImpl) EnrollStudent(ctx context.Context, student models.Student) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.university.EnrollPerson(student)
	s.logger.Debug().Str("student", student.Name).Msg("Student enrolled")
	return nil
}

// GraduateStudent removes a student from the university roster
func (s *universityServiceImpl) GraduateStudent(ctx context.Context, student models.Student) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if err := s.university.GraduatePerson(student); err != nil {
		s.logger.Warn().Err(err).Str("student", student.Name).Msg("Cannot graduate student")
		return fmt.Errorf("error graduating student: %w", err)
	}
	s.logger.Debug().Str("student", student.Name).Msg("Student graduated")
	return nil
}

// ListStudents returns the university roster in enrollment order
func (s *universityServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return s.university.Students(), nil
}

// HireTeacher adds a teacher to the staff
func (s *universityServiceImpl) HireTeacher(ctx context.Context, teacher models.Teacher) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.university.HireTeacher(teacher)
	s.logger.Debug().Str("teacher", teacher.Name).Msg("Teacher hired")
	return nil
}

// FireTeacher removes a teacher from the staff
func (s *universityServiceImpl) FireTeacher(ctx context.Context, teacher models.Teacher) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if err := s.university.FireTeacher(teacher); err != nil {
		s.logger.Warn().Err(err).Str("teacher", teacher.Name).Msg("Cannot fire teacher")
		return fmt.Errorf("error firing teacher: %w", err)
	}
	s.logger.Debug().Str("teacher", teacher.Name).Msg("Teacher fired")
	return nil
}

// ListTeachers returns the staff in hiring order
func (s *universityServiceImpl) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return s.university.Teachers(), nil
}

// OfferCourse creates a course with an empty roster and adds it to the catalog.
// The teacher does not have to be on the staff.
func (s *universityServiceImpl) OfferCourse(ctx context.Context, name string, teacher models.Teacher) (*dto.CourseResponse, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	course := models.NewCourse(name, teacher)
	s.university.OfferCourse(course)
	s.logger.Debug().Str("course", name).Str("teacher", teacher.Name).Msg("Course offered")

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// CancelCourse removes the first course with the given name from the catalog
func (s *universityServiceImpl) CancelCourse(ctx context.Context, name string) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	course, err := s.university.FindCourse(name)
	if err == nil {
		err = s.university.CancelCourse(course)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("course", name).Msg("Cannot cancel course")
		return fmt.Errorf("error cancelling course: %w", err)
	}
	s.logger.Debug().Str("course", name).Msg("Course cancelled")
	return nil
}

// ListCourses snapshots the catalog in offering order
func (s *universityServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return dto.NewCourseResponses(s.university.Courses()), nil
}

// GetCourse snapshots the first course with the given name
func (s *universityServiceImpl) GetCourse(ctx context.Context, name string) (*dto.CourseResponse, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	course, err := s.university.FindCourse(name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// AddStudentToCourse appends a student to a course roster. The student does
// not have to be enrolled in the university.
func (s *universityServiceImpl) AddStudentToCourse(ctx context.Context, courseName string, student models.Student) (*dto.CourseResponse, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	course, err := s.university.FindCourse(courseName)
	if err != nil {
		return nil, fmt.Errorf("error adding student to course: %w", err)
	}
	course.AddStudent(student)
	s.logger.Debug().Str("course", courseName).Str("student", student.Name).Msg("Student added to course")

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// RemoveStudentFromCourse removes the first matching roster entry
func (s *universityServiceImpl) RemoveStudentFromCourse(ctx context.Context, courseName string, student models.Student) (*dto.CourseResponse, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	course, err := s.university.FindCourse(courseName)
	if err != nil {
		return nil, fmt.Errorf("error removing student from course: %w", err)
	}
	if err := course.RemoveStudent(student); err != nil {
		s.logger.Warn().Err(err).Str("course", courseName).Str("student", student.Name).Msg("Cannot remove student from course")
		return nil, apperrors.NewCustomError(err, fmt.Sprintf("%s is not on the %s roster", student.Name, courseName)).
			WithCode(string(dto.ErrorCodeResourceNotFound))
	}
	s.logger.Debug().Str("course", courseName).Str("student", student.Name).Msg("Student removed from course")

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// CourseRoster returns the roster of the first course with the given name
func (s *universityServiceImpl) CourseRoster(ctx context.Context, courseName string) ([]models.Student, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	course, err := s.university.FindCourse(courseName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course roster: %w", err)
	}
	return course.EnrolledStudents(), nil
}
