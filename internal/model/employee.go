package model

// Employee is a staff record created by an external onboarding process.
// The identity provider's subject id maps 1:1 onto Employee.ID; this service
// only ever reads employees.
type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Principal derives the request-scoped identity from an employee record.
func (e *Employee) Principal() *Principal {
	return &Principal{ID: e.ID, Role: e.Role}
}
