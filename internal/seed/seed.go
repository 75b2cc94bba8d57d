package seed

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/campus/internal/app/models"
)

// CourseEntry is a catalog entry in a seed file
type CourseEntry struct {
	Name     string           `yaml:"name"`
	Teacher  models.Teacher   `yaml:"teacher"`
	Students []models.Student `yaml:"students"`
}

// Data is the content of a seed file
type Data struct {
	Students []models.Student `yaml:"students"`
	Teachers []models.Teacher `yaml:"teachers"`
	Courses  []CourseEntry    `yaml:"courses"`
}

// Load reads and parses a seed file
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// Apply puts the seed data into facility, in file order
func Apply(facility models.Facility, data *Data, lgr zerolog.Logger) {
	for _, s := range data.Students {
		facility.EnrollPerson(s)
	}
	for _, t := range data.Teachers {
		facility.HireTeacher(t)
	}
	for _, entry := range data.Courses {
		course := models.NewCourse(entry.Name, entry.Teacher)
		for _, s := range entry.Students {
			course.AddStudent(s)
		}
		facility.OfferCourse(course)
	}

	lgr.Info().
		Int("students", len(data.Students)).
		Int("teachers", len(data.Teachers)).
		Int("courses", len(data.Courses)).
		Msg("Seed data applied")
}
