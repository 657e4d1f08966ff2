package model

// Response is the envelope for every non-array body the service writes.
// Error responses always carry Success=false and a human-readable Message;
// validation failures additionally carry the accumulated field errors.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`

	UserID   string        `json:"user_id,omitempty"`
	JWTToken string        `json:"jwt_token,omitempty"`
	Employee *EmployeeView `json:"employee,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
