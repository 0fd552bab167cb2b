package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxPostLength     = 280
)

type FieldError struct {
	Field   string
	Message string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Message)
	}

	return strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(f.Username) == "" {
		verr.add("username", "Username is required")
	}
	validatePassword(verr, f.Password)

	return verr.orNil()
}

type RegisterForm struct {
	Name     string
	Username string
	Password string
}

func (f RegisterForm) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(f.Name) == "" {
		verr.add("name", "Name is required")
	}
	if strings.TrimSpace(f.Username) == "" {
		verr.add("username", "Username is required")
	}
	validatePassword(verr, f.Password)

	return verr.orNil()
}

func validatePassword(verr *ValidationError, password string) {
	switch {
	case password == "":
		verr.add("password", "Password is required")
	case utf8.RuneCountInString(password) < MinPasswordLength:
		verr.add("password", "Password must be at least 8 characters")
	}
}

type PostForm struct {
	Text string
}

func (f PostForm) Validate() error {
	verr := &ValidationError{}
	text := strings.TrimSpace(f.Text)
	switch {
	case text == "":
		verr.add("text", "Post cannot be empty")
	case utf8.RuneCountInString(text) > MaxPostLength:
		verr.add("text", "Post cannot be longer than 280 characters")
	}

	return verr.orNil()
}

type ProfileForm struct {
	Name      string
	Bio       string
	ImagePath string
}

func (f ProfileForm) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(f.Name) == "" {
		verr.add("name", "Name is required")
	}

	return verr.orNil()
}
