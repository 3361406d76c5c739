package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/schools/student/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	helper "schoolku_backend/internals/helpers"
)

type CreateStudentRequest struct {
	FirstName      string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName       string  `json:"lastName" validate:"required,min=1,max=100"`
	DateOfBirth    *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	NiveauScolaire string  `json:"niveauScolaire" validate:"required,min=1,max=50"`
	GroupID        string  `json:"groupId" validate:"required,uuid4"`
}

func (r *CreateStudentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.NiveauScolaire = strings.TrimSpace(r.NiveauScolaire)
}

// ToModel: group + school diisi lewat AssignGroup supaya salinan school
// tidak pernah menyimpang dari group-nya.
func (r CreateStudentRequest) ToModel(group *groupModel.StudentGroupModel) (m.StudentModel, error) {
	student := m.StudentModel{
		StudentFirstName:      r.FirstName,
		StudentLastName:       r.LastName,
		StudentNiveauScolaire: r.NiveauScolaire,
	}
	if r.DateOfBirth != nil {
		dob, err := helper.ParseDateYYYYMMDD(*r.DateOfBirth)
		if err != nil {
			return m.StudentModel{}, err
		}
		student.StudentDateOfBirth = &dob
	}
	student.AssignGroup(group)
	return student, nil
}

type UpdateStudentRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	DateOfBirth    *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	NiveauScolaire *string `json:"niveauScolaire" validate:"omitempty,min=1,max=50"`
	GroupID        *string `json:"groupId" validate:"omitempty,uuid4"`
}

func (r UpdateStudentRequest) ApplyTo(s *m.StudentModel) error {
	if r.FirstName != nil {
		s.StudentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		s.StudentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.NiveauScolaire != nil {
		s.StudentNiveauScolaire = strings.TrimSpace(*r.NiveauScolaire)
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return err
		}
		s.StudentDateOfBirth = &dob
	}
	return nil
}
