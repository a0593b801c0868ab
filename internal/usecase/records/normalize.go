// Package records turns raw upstream academic records into the structures
// the portal pages render. Everything here is pure; no I/O.
package records

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/studentportal/portal/internal/entity"
	"github.com/studentportal/portal/internal/entity/dto/v1"
)

const (
	// PlaceholderSection is what the upstream sends when a student is in the only section.
	PlaceholderSection = "Section"
	DefaultSection     = "Section 1"
)

var validate = validator.New()

func validateAll[T any](call string, recs []T) error {
	for i := range recs {
		if err := validate.Struct(&recs[i]); err != nil {
			return ErrMalformed.Wrap(call, fmt.Sprintf("record %d", i), err)
		}
	}

	return nil
}

// PartitionBySemester places every record in exactly one (semester, sitting)
// bucket. The smallest period id seen is the first semester; every other
// period is the second. Both semesters are present even for empty input.
func PartitionBySemester(recs []entity.CourseRecord) (dto.Semesters, error) {
	if err := validateAll("PartitionBySemester", recs); err != nil {
		return nil, err
	}

	out := dto.NewSemesters()
	if len(recs) == 0 {
		return out, nil
	}

	first := *recs[0].PeriodeID
	for i := range recs[1:] {
		first = min(first, *recs[i+1].PeriodeID)
	}

	for _, r := range recs {
		key := dto.SemesterTwo
		if *r.PeriodeID == first {
			key = dto.SemesterOne
		}

		bucket := out[key]
		if r.Session == entity.SessionNormal {
			bucket.Normal = append(bucket.Normal, r)
		} else {
			bucket.Rattrappage = append(bucket.Rattrappage, r)
		}

		out[key] = bucket
	}

	return out, nil
}

// FoldGroups builds the period -> {group, section} mapping. Records are
// applied in ascending period order so the latest period wins; records
// without a section never overwrite an entry.
func FoldGroups(recs []entity.GroupRecord) (dto.GroupSections, error) {
	if err := validateAll("FoldGroups", recs); err != nil {
		return dto.GroupSections{}, err
	}

	sorted := slices.Clone(recs)
	slices.SortStableFunc(sorted, compareGroupRecords)

	out := dto.NewGroupSections()

	for _, r := range sorted {
		if r.NomSection == nil || strings.TrimSpace(*r.NomSection) == "" {
			continue
		}

		section := *r.NomSection
		if section == PlaceholderSection {
			section = DefaultSection
		}

		out.Put(r.LibellePeriode, dto.GroupSection{Group: r.NomGroupe, Section: section})
	}

	return out, nil
}

// compareGroupRecords orders by period id, then by content, so the fold does
// not depend on the order the upstream returned records in.
func compareGroupRecords(a, b entity.GroupRecord) int {
	return cmp.Or(
		cmp.Compare(*a.PeriodeID, *b.PeriodeID),
		cmp.Compare(a.LibellePeriode, b.LibellePeriode),
		cmp.Compare(a.NomGroupe, b.NomGroupe),
		cmp.Compare(sectionOf(a), sectionOf(b)),
	)
}

func sectionOf(r entity.GroupRecord) string {
	if r.NomSection == nil {
		return ""
	}

	return *r.NomSection
}

// DecodeEnrollments parses the dias cookie value.
func DecodeEnrollments(raw string) ([]entity.Enrollment, error) {
	var dias []entity.Enrollment

	if err := json.Unmarshal([]byte(raw), &dias); err != nil {
		return nil, ErrMalformed.Wrap("DecodeEnrollments", "json.Unmarshal", err)
	}

	if err := validateAll("DecodeEnrollments", dias); err != nil {
		return nil, err
	}

	return dias, nil
}

// SelectEnrollment picks the enrollment of the current academic year, or
// the last one listed when no year matches or none is configured.
func SelectEnrollment(dias []entity.Enrollment, currentYear string) (entity.Enrollment, bool) {
	if len(dias) == 0 {
		return entity.Enrollment{}, false
	}

	if currentYear != "" {
		for _, d := range dias {
			if d.AnneeAcademiqueCode == currentYear {
				return d, true
			}
		}
	}

	return dias[len(dias)-1], true
}
