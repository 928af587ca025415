// Package entities contains core business entities.
package entities

// User is a domain representation of an account that can sign in.
// Password is an opaque credential; hashing is out of scope here.
type User struct {
	ID       string
	Username string
	Password string
}

// NewUser carries the caller-supplied fields for user creation.
type NewUser struct {
	Username string
	Password string
}

// UserPatch is a partial update for a user. Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Password *string
}

// Apply merges the non-nil patch fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}
