package dto

import "github.com/studentportal/portal/internal/entity"

const (
	SemesterOne = "Semester 1"
	SemesterTwo = "Semester 2"
)

// SemesterBucket splits one semester's notes by exam sitting.
type SemesterBucket struct {
	Normal      []entity.CourseRecord `json:"normal"`
	Rattrappage []entity.CourseRecord `json:"rattrappage"`
}

// Semesters is keyed by SemesterOne and SemesterTwo; both keys are always present.
type Semesters map[string]SemesterBucket

// NewSemesters returns both semesters with empty, non-nil buckets.
func NewSemesters() Semesters {
	return Semesters{
		SemesterOne: {Normal: []entity.CourseRecord{}, Rattrappage: []entity.CourseRecord{}},
		SemesterTwo: {Normal: []entity.CourseRecord{}, Rattrappage: []entity.CourseRecord{}},
	}
}

// Count returns the number of records across every bucket.
func (s Semesters) Count() int {
	n := 0
	for _, b := range s {
		n += len(b.Normal) + len(b.Rattrappage)
	}

	return n
}
