package model

import "time"

const DateOnly = "2006-01-02"

type Employee struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Position        string
	Department      string
	Salary          float64
	DateOfJoining   time.Time
	ProfileImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EmployeeInput carries the raw form fields of a create or update request.
// A nil field was not present in the payload, which matters for partial
// updates; coercion of salary and date happens in the service.
type EmployeeInput struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Position      *string
	Department    *string
	Salary        *string
	DateOfJoining *string
}

// EmployeePatch is the coerced partial update applied to a stored record.
// Nil fields keep their prior values.
type EmployeePatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Position        *string
	Department      *string
	Salary          *float64
	DateOfJoining   *time.Time
	ProfileImageURL *string
}

// EmployeeView is the public projection returned on every employee route.
type EmployeeView struct {
	EmployeeID      string  `json:"employee_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Position        string  `json:"position"`
	Salary          float64 `json:"salary"`
	DateOfJoining   string  `json:"date_of_joining"`
	Department      string  `json:"department"`
	ProfileImageURL *string `json:"profile_image_url"`
}

func (e Employee) View() EmployeeView {
	return EmployeeView{
		EmployeeID:      e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Position:        e.Position,
		Salary:          e.Salary,
		DateOfJoining:   e.DateOfJoining.Format(DateOnly),
		Department:      e.Department,
		ProfileImageURL: e.ProfileImageURL,
	}
}
