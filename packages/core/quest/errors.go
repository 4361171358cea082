package quest

import (
	"errors"
	"fmt"
)

var (
	ErrQuestNotFound         = errors.New("quest not found")
	ErrMissingEnvVar         = errors.New("missing environment variable")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	ErrMalformedPlaceholder  = errors.New("malformed placeholder")

	// ErrEmptyValueSource is returned when an entry carries no value at all.
	ErrEmptyValueSource = errors.New("value has neither a literal nor an environment reference")
)

// QuestNotFoundError is returned when the requested quest is not in the document.
type QuestNotFoundError struct {
	Name string
}

func (e *QuestNotFoundError) Error() string {
	return fmt.Sprintf("quest %q not found", e.Name)
}

func (e *QuestNotFoundError) Unwrap() error { return ErrQuestNotFound }

// MissingEnvVarError is returned when an EnvRef names an unset variable.
type MissingEnvVarError struct {
	Name string
}

func (e *MissingEnvVarError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}

func (e *MissingEnvVarError) Unwrap() error { return ErrMissingEnvVar }

// UnresolvedPlaceholderError is returned when a URL placeholder has no var.
type UnresolvedPlaceholderError struct {
	Name string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("placeholder ${%s} has no matching var", e.Name)
}

func (e *UnresolvedPlaceholderError) Unwrap() error { return ErrUnresolvedPlaceholder }

// MalformedPlaceholderError is returned for an unterminated or empty placeholder.
type MalformedPlaceholderError struct {
	Template string
	Offset   int
}

func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf("malformed placeholder at offset %d in %q", e.Offset, e.Template)
}

func (e *MalformedPlaceholderError) Unwrap() error { return ErrMalformedPlaceholder }

// Section identifies which part of a quest failed to resolve.
type Section string

const (
	SectionVar    Section = "var"
	SectionHeader Section = "header"
	SectionParam  Section = "param"
	SectionURL    Section = "url"
)

// ResolveError adds the quest name and the failing key to a resolution failure.
type ResolveError struct {
	Quest   string
	Section Section
	Key     string
	Err     error
}

func (e *ResolveError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("quest %q: %s: %v", e.Quest, e.Section, e.Err)
	}
	return fmt.Sprintf("quest %q: %s %q: %v", e.Quest, e.Section, e.Key, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }
