package dto

import (
	"strings"

	m "schoolku_backend/internals/features/schools/school/model"
)

type CreateSchoolRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=150"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
}

func (r *CreateSchoolRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
}

func (r CreateSchoolRequest) ToModel() m.SchoolModel {
	return m.SchoolModel{
		SchoolName:    r.Name,
		SchoolAddress: r.Address,
		SchoolPhone:   r.Phone,
	}
}

type UpdateSchoolRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=150"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
}

func (r *UpdateSchoolRequest) Normalize() {
	trimPtr(&r.Name)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
}

// ApplyTo menyalin hanya field yang dikirim klien.
func (r UpdateSchoolRequest) ApplyTo(sc *m.SchoolModel) {
	if r.Name != nil {
		sc.SchoolName = *r.Name
	}
	if r.Address != nil {
		sc.SchoolAddress = r.Address
	}
	if r.Phone != nil {
		sc.SchoolPhone = r.Phone
	}
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
