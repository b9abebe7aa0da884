package dto

// CreateTeacherRequest defines the payload for creating a teacher.
type CreateTeacherRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=120"`
	Branch string `json:"branch" validate:"required,min=2,max=80"`
	Level  string `json:"level" validate:"required,oneof=Anaokulu İlkokul Ortaokul"`
	Active *bool  `json:"active"`
}

// UpdateTeacherRequest defines the payload for updating a teacher. Omitted
// fields keep their stored values.
type UpdateTeacherRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=120"`
	Branch *string `json:"branch" validate:"omitempty,min=2,max=80"`
	Level  *string `json:"level" validate:"omitempty,oneof=Anaokulu İlkokul Ortaokul"`
	Active *bool   `json:"active"`
}

// ListTeachersQuery captures list filters from the query string.
type ListTeachersQuery struct {
	Search    string `form:"search"`
	Branch    string `form:"branch"`
	Level     string `form:"level"`
	Active    *bool  `form:"active"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// CreateClassRequest defines the payload for creating a class.
type CreateClassRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=60"`
	Level     string  `json:"level" validate:"required,oneof=Anaokulu İlkokul Ortaokul"`
	TeacherID *string `json:"teacherId" validate:"omitempty,uuid4"`
}

// UpdateClassRequest defines the payload for updating a class.
type UpdateClassRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=60"`
	Level     *string `json:"level" validate:"omitempty,oneof=Anaokulu İlkokul Ortaokul"`
	TeacherID *string `json:"teacherId" validate:"omitempty,uuid4"`
}

// ListClassesQuery captures list filters from the query string.
type ListClassesQuery struct {
	Search    string `form:"search"`
	Level     string `form:"level"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// CreateSubjectRequest defines the payload for creating a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Branch      string `json:"branch" validate:"required,min=2,max=80"`
	Level       string `json:"level" validate:"required,oneof=Anaokulu İlkokul Ortaokul"`
	WeeklyHours int    `json:"weeklyHours" validate:"required,min=1,max=30"`
}

// UpdateSubjectRequest defines the payload for updating a subject.
type UpdateSubjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Branch      *string `json:"branch" validate:"omitempty,min=2,max=80"`
	Level       *string `json:"level" validate:"omitempty,oneof=Anaokulu İlkokul Ortaokul"`
	WeeklyHours *int    `json:"weeklyHours" validate:"omitempty,min=1,max=30"`
}

// ListSubjectsQuery captures list filters from the query string.
type ListSubjectsQuery struct {
	Search    string `form:"search"`
	Branch    string `form:"branch"`
	Level     string `form:"level"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
