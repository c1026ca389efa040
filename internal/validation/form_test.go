package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_NilPolicyIsStrict(t *testing.T) {
	v := New(nil)
	assert.Equal(t, PolicyStrict, v.Policy().Name())
	assert.True(t, v.IsValidUsername("a.b"))
}

func TestValidator_IsLoginFormValid(t *testing.T) {
	v := New(StrictPolicy{})

	assert.True(t, v.IsLoginFormValid("x", "y"))
	assert.False(t, v.IsLoginFormValid("", "y"))
	assert.False(t, v.IsLoginFormValid("x", ""))
}

func TestValidator_IsRegisterFormValid(t *testing.T) {
	tests := []struct {
		name     string
		policy   UsernamePolicy
		username string
		password string
		confirm  string
		want     bool
	}{
		{"all good", StrictPolicy{}, "alice", "Abcdef1!", "Abcdef1!", true},
		{"short username", StrictPolicy{}, "al", "Abcdef1!", "Abcdef1!", false},
		{"weak password", StrictPolicy{}, "alice", "abcdef", "abcdef", false},
		{"mismatch", StrictPolicy{}, "alice", "Abcdef1!", "Abcdef1?", false},
		{"dot allowed by strict", StrictPolicy{}, "al.ice", "Abcdef1!", "Abcdef1!", true},
		{"dot rejected by permissive", PermissivePolicy{}, "al.ice", "Abcdef1!", "Abcdef1!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.policy)
			assert.Equal(t, tt.want, v.IsRegisterFormValid(tt.username, tt.password, tt.confirm))
		})
	}
}
