package user

type User struct {
	id           int64
	username     Username
	email        Email
	passwordHash string
	roleID       int64
}

func NewUser(username Username, email Email, passwordHash string, roleID int64) (*User, error) {
	if roleID <= 0 {
		return nil, ErrInvalidRole
	}
	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		roleID:       roleID,
	}, nil
}

// Reconstruct rebuilds a stored user without re-validating it.
func Reconstruct(id int64, username, email, passwordHash string, roleID int64) *User {
	return &User{
		id:           id,
		username:     Username{value: username},
		email:        Email{value: email},
		passwordHash: passwordHash,
		roleID:       roleID,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) RoleID() int64        { return u.roleID }

func (u *User) SetID(id int64) {
	u.id = id
}

// ChangeProfile replaces every mutable attribute; the caller has already verified the old password.
func (u *User) ChangeProfile(username Username, email Email, passwordHash string, roleID int64) error {
	if roleID <= 0 {
		return ErrInvalidRole
	}
	if passwordHash == "" {
		return ErrEmptyPassword
	}
	u.username = username
	u.email = email
	u.passwordHash = passwordHash
	u.roleID = roleID
	return nil
}
