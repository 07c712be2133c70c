package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEditorFromContext(t *testing.T) {
	cases := []struct {
		name   string
		userID string
		roles  []string
		want   bool
	}{
		{name: "anonymous", want: false},
		{name: "anonymous_with_roles", roles: []string{RoleEditor}, want: false},
		{name: "reader", userID: "user1", roles: []string{"reader"}, want: false},
		{name: "editor", userID: "user1", roles: []string{"reader", RoleEditor}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			if tc.userID != "" {
				ctx = ContextWithUserID(ctx, tc.userID)
			}
			ctx = ContextWithRoles(ctx, tc.roles)
			assert.Equal(t, tc.want, IsEditorFromContext(ctx))
		})
	}
}
