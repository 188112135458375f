package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studentdocs/internal/model"
)

func TestDecide(t *testing.T) {
	doc := &model.Document{ID: "d1", UploadedBy: "u1"}

	tests := []struct {
		name      string
		principal *model.Principal
		document  *model.Document
		want      Decision
	}{
		{
			name:      "uploader with member role is allowed",
			principal: &model.Principal{ID: "u1", Role: model.RoleMember},
			document:  doc,
			want:      Allow,
		},
		{
			name:      "uploader with admin role is allowed",
			principal: &model.Principal{ID: "u1", Role: model.RoleAdmin},
			document:  doc,
			want:      Allow,
		},
		{
			name:      "other member is denied",
			principal: &model.Principal{ID: "u2", Role: model.RoleMember},
			document:  doc,
			want:      Deny,
		},
		{
			name:      "non-uploader admin is allowed",
			principal: &model.Principal{ID: "a1", Role: model.RoleAdmin},
			document:  doc,
			want:      Allow,
		},
		{
			name:      "member with empty role string is denied",
			principal: &model.Principal{ID: "u2"},
			document:  doc,
			want:      Deny,
		},
		{
			name:      "nil principal is denied",
			principal: nil,
			document:  doc,
			want:      Deny,
		},
		{
			name:      "nil document is denied",
			principal: &model.Principal{ID: "a1", Role: model.RoleAdmin},
			document:  nil,
			want:      Deny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.principal, tt.document))
		})
	}
}

func TestDecideRuleOrder(t *testing.T) {
	// Uploader match wins before the role is even considered; a member who
	// uploaded the document does not need admin.
	p := &model.Principal{ID: "u1", Role: model.RoleMember}
	d := &model.Document{ID: "d1", UploadedBy: "u1"}
	assert.Equal(t, Allow, Decide(p, d))

	// Changing only the uploader flips the decision for the same member.
	d2 := &model.Document{ID: "d2", UploadedBy: "someone-else"}
	assert.Equal(t, Deny, Decide(p, d2))
}
