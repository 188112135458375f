package model

import "time"

// StudentStatus is an explicit enumeration; no boolean flags.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// Student is owned by external collaborators. Documents reference students;
// this service validates the reference but never mutates the record.
type Student struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	EnrollmentDate     time.Time     `json:"enrollment_date"`
	Status             StudentStatus `json:"status"`
	AssignedEmployeeID string        `json:"assigned_employee_id"`
}
