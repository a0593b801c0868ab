package entity

// SessionNormal marks the regular exam sitting; any other session value is a resit.
const SessionNormal = "session_1"

// CourseRecord is one exam note as returned by the upstream API.
type CourseRecord struct {
	PeriodeID     *int     `json:"periodeId" validate:"required"`
	Session       string   `json:"session" validate:"required"`
	LibelleModule string   `json:"libelleModule" validate:"required"`
	Note          *float64 `json:"note"`
	CodeActivite  string   `json:"codeActivite"`
}

// GroupRecord is one group/section assignment for a period.
type GroupRecord struct {
	PeriodeID      *int    `json:"periodeId" validate:"required"`
	LibellePeriode string  `json:"libellePeriode" validate:"required"`
	NomGroupe      string  `json:"nomGroupe"`
	NomSection     *string `json:"nomSection"`
}

// Enrollment is one entry of the dias cookie.
type Enrollment struct {
	ID                  int    `json:"id" validate:"required"`
	AnneeAcademiqueCode string `json:"anneeAcademiqueCode" validate:"required"`
	LibelleFormation    string `json:"libelleFormation,omitempty"`
	Niveau              string `json:"niveau,omitempty"`
}
