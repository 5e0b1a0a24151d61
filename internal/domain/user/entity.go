package user

import (
	"time"
)

type User struct {
	id           int64
	username     Username
	email        Email
	name         PersonName
	role         Role
	passwordHash string
	isStaff      bool
	isSuperuser  bool
	isActive     bool
	dateJoined   time.Time
	lastLogin    *time.Time
}

func NewUser(username Username, email Email, name PersonName, role Role, passwordHash string, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		username:     username,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		isActive:     true,
		dateJoined:   now,
	}, nil
}

// Reconstruct rebuilds a persisted user without re-running creation rules.
func Reconstruct(id int64, username Username, email Email, name PersonName, role Role, passwordHash string,
	isStaff, isSuperuser, isActive bool, dateJoined time.Time, lastLogin *time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isSuperuser:  isSuperuser,
		isActive:     isActive,
		dateJoined:   dateJoined,
		lastLogin:    lastLogin,
	}
}

// Promote raises the account to the admin tier. Staff status is a separate flag and is left untouched.
func (u *User) Promote() {
	u.role = RoleAdmin
}

// GrantStaff marks the account as back-office staff.
func (u *User) GrantStaff(superuser bool) {
	u.isStaff = true
	u.isSuperuser = superuser
}

func (u *User) ID() int64             { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) Email() Email          { return u.email }
func (u *User) Name() PersonName      { return u.name }
func (u *User) Role() Role            { return u.role }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsStaff() bool         { return u.isStaff }
func (u *User) IsSuperuser() bool     { return u.isSuperuser }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) DateJoined() time.Time { return u.dateJoined }
func (u *User) LastLogin() *time.Time { return u.lastLogin }

// DisplayName renders "<username> (<tier>)", the label used wherever a user is shown as a string.
func DisplayName(username string, role Role) string {
	return username + " (" + role.Display() + ")"
}
