package validation

// Validator bundles the form gates with the username policy in force.
type Validator struct {
	policy UsernamePolicy
}

// New returns a Validator using policy. A nil policy falls back to StrictPolicy.
func New(policy UsernamePolicy) *Validator {
	if policy == nil {
		policy = StrictPolicy{}
	}
	return &Validator{policy: policy}
}

// Policy returns the username policy in force.
func (v *Validator) Policy() UsernamePolicy {
	return v.policy
}

func (v *Validator) IsValidUsername(username string) bool {
	return v.policy.Valid(username)
}

func (v *Validator) ValidatePassword(password string) PasswordResult {
	return ValidatePassword(password)
}

// IsLoginFormValid only requires both fields to be filled in. Login does not
// enforce username shape or password strength.
func (v *Validator) IsLoginFormValid(username, password string) bool {
	return username != "" && password != ""
}

func (v *Validator) IsRegisterFormValid(username, password, confirm string) bool {
	return v.IsValidUsername(username) &&
		ValidatePassword(password) == PasswordValid &&
		DoPasswordsMatch(password, confirm)
}
