package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidUsername = errors.New("username may contain only letters, digits and @/./+/-/_ characters")
	ErrUsernameTooLong = errors.New("username must be at most 150 characters")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrNameTooLong     = errors.New("name must be at most 150 characters")

	// Both match ErrNameTooLong.
	ErrFirstNameTooLong = fmt.Errorf("first name: %w", ErrNameTooLong)
	ErrLastNameTooLong  = fmt.Errorf("last name: %w", ErrNameTooLong)

	ErrRoleNotSelfAssignable = errors.New("tipo admin cannot be chosen at registration")
)

const (
	MaxUsernameLength = 150
	MaxNameLength     = 150
	MaxEmailLength    = 254
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}.@+\-_]+$`)
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrEmptyUsername
	}
	if len([]rune(s)) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

// UsernameFromStorage wraps a value already validated on the way in.
func UsernameFromStorage(s string) Username {
	return Username{value: s}
}

func (u Username) Value() string {
	return u.value
}

// Email is optional on accounts; the zero value represents "no email".
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

// NewOptionalEmail accepts the empty string as "no email".
func NewOptionalEmail(s string) (Email, error) {
	if strings.TrimSpace(s) == "" {
		return Email{}, nil
	}
	return NewEmail(s)
}

func EmailFromStorage(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type PersonName struct {
	First string
	Last  string
}

func NewPersonName(first, last string) (PersonName, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if len([]rune(first)) > MaxNameLength {
		return PersonName{}, ErrFirstNameTooLong
	}
	if len([]rune(last)) > MaxNameLength {
		return PersonName{}, ErrLastNameTooLong
	}
	return PersonName{First: first, Last: last}, nil
}
