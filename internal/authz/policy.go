// Package authz holds the document access policy. It is a pure decision
// function with no I/O; callers resolve the principal and load the document
// before asking for a decision, and map an absent document to NotFound
// themselves — the policy is never consulted for a missing document.
package authz

import "studentdocs/internal/model"

// Decision is the outcome of a policy evaluation.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Decide evaluates, in order: the uploader may access their own document,
// admins may access any document, everyone else is denied.
func Decide(p *model.Principal, d *model.Document) Decision {
	if p == nil || d == nil {
		return Deny
	}
	if p.ID == d.UploadedBy {
		return Allow
	}
	if p.Role == model.RoleAdmin {
		return Allow
	}
	return Deny
}
