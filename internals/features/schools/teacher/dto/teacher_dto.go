package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/schools/teacher/model"
)

type CreateTeacherRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string  `json:"lastName" validate:"required,min=2,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	SchoolID  string  `json:"schoolId" validate:"required,uuid4"`

	// Kredensial login untuk user teacher yang ikut dibuat
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.UserName = strings.TrimSpace(r.UserName)
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		if v == "" {
			r.Phone = nil
		} else {
			r.Phone = &v
		}
	}
}

func (r CreateTeacherRequest) ToModel(schoolID, userID uuid.UUID) m.TeacherModel {
	return m.TeacherModel{
		TeacherFirstName: r.FirstName,
		TeacherLastName:  r.LastName,
		TeacherPhone:     r.Phone,
		TeacherSchoolID:  schoolID,
		TeacherUserID:    userID,
	}
}

type UpdateTeacherRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
}

func (r UpdateTeacherRequest) ApplyTo(t *m.TeacherModel) {
	if r.FirstName != nil {
		t.TeacherFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		t.TeacherLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Phone != nil {
		t.TeacherPhone = r.Phone
	}
}
