package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/schools/student_group/model"
)

type CreateStudentGroupRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	SchoolID  string  `json:"schoolId" validate:"required,uuid4"`
	TeacherID *string `json:"teacherId" validate:"omitempty,uuid4"`
}

func (r *CreateStudentGroupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateStudentGroupRequest) ToModel(schoolID uuid.UUID, teacherID *uuid.UUID) m.StudentGroupModel {
	return m.StudentGroupModel{
		StudentGroupName:      r.Name,
		StudentGroupSchoolID:  schoolID,
		StudentGroupTeacherID: teacherID,
	}
}

type UpdateStudentGroupRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	TeacherID *string `json:"teacherId" validate:"omitempty,uuid4"`
	// true = lepas teacher dari group tanpa mengganti
	ClearTeacher bool `json:"clearTeacher"`
}
