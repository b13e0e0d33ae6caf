package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Status is the A/I lifecycle state shared by every aggregate.
type Status string

const (
	// StatusActive marks an aggregate as usable.
	StatusActive Status = "A"
	// StatusInactive marks an aggregate as logically deleted.
	StatusInactive Status = "I"
)

// ParseStatus accepts "A" or "I" (case and surrounding spaces ignored).
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusActive:
		return StatusActive, true
	case StatusInactive:
		return StatusInactive, true
	default:
		return "", false
	}
}

// Valid reports whether s is A or I.
func (s Status) Valid() bool { return s == StatusActive || s == StatusInactive }

// Actor is an optional identifier of whoever performs a mutation. The zero
// value is the absent actor.
type Actor struct {
	id  string
	set bool
}

// SomeActor returns an actor with the given identifier. A blank identifier
// yields the absent actor.
func SomeActor(id string) Actor {
	id = strings.TrimSpace(id)
	if id == "" {
		return Actor{}
	}

	return Actor{id: id, set: true}
}

// NoActor returns the absent actor.
func NoActor() Actor { return Actor{} }

// ID returns the identifier and whether one is present.
func (a Actor) ID() (string, bool) { return a.id, a.set }

// IsSet reports whether an identifier is present.
func (a Actor) IsSet() bool { return a.set }

// String returns the identifier or an empty string.
func (a Actor) String() string { return a.id }

// Or returns a when it is set and SomeActor(fallback) otherwise.
func (a Actor) Or(fallback string) Actor {
	if a.set {
		return a
	}

	return SomeActor(fallback)
}

// Audit holds the bookkeeping fields carried by every aggregate.
type Audit struct {
	// CreatedAt is set once when the aggregate is created.
	CreatedAt time.Time
	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time
	// UpdatedBy is the actor of the latest mutation, if known.
	UpdatedBy Actor
}

func newAudit(now time.Time, actor Actor) Audit {
	now = now.UTC()

	return Audit{CreatedAt: now, UpdatedAt: now, UpdatedBy: actor}
}

// touch never moves UpdatedAt backwards; equal timestamps only happen when the
// clock resolution ties.
func (a Audit) touch(now time.Time, actor Actor) Audit {
	now = now.UTC()
	if now.Before(a.UpdatedAt) {
		now = a.UpdatedAt
	}
	a.UpdatedAt = now
	a.UpdatedBy = actor

	return a
}

func (a Audit) check(v *violations) {
	if a.CreatedAt.IsZero() {
		v.add("createdAt", "is required")
	}
	if a.UpdatedAt.IsZero() {
		v.add("updatedAt", "is required")
	} else if a.UpdatedAt.Before(a.CreatedAt) {
		v.add("updatedAt", "must not precede createdAt")
	}
}

var (
	// letters, digits and spaces
	plainTextRe = regexp.MustCompile(`^[\p{L}\p{N} ]+$`)
	alnumRe     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	codeRe      = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// violations collects every broken field rule so a single InvalidData error
// can report all of them.
type violations struct {
	family Family
	fields []string
	msgs   []string
}

func newViolations(f Family) *violations { return &violations{family: f} }

func (v *violations) add(field, msg string) {
	v.fields = append(v.fields, field)
	v.msgs = append(v.msgs, field+" "+msg)
}

func (v *violations) err() error {
	if len(v.fields) == 0 {
		return nil
	}

	return v.family.InvalidData(v.fields, "%s", strings.Join(v.msgs, "; "))
}

// required checks a mandatory free-text field.
func (v *violations) required(field, value string, maxLen int) {
	switch {
	case value == "":
		v.add(field, "is required")
	case utf8.RuneCountInString(value) > maxLen:
		v.add(field, "is too long")
	}
}

// optional checks an optional free-text field.
func (v *violations) optional(field, value string, maxLen int) {
	if utf8.RuneCountInString(value) > maxLen {
		v.add(field, "is too long")
	}
}

// plainText checks a field restricted to letters, digits and spaces.
func (v *violations) plainText(field, value string, required bool, maxLen int) {
	switch {
	case value == "" && required:
		v.add(field, "is required")
	case value == "":
	case utf8.RuneCountInString(value) > maxLen:
		v.add(field, "is too long")
	case !plainTextRe.MatchString(value):
		v.add(field, "may only contain letters, digits and spaces")
	}
}

func (v *violations) status(s Status) {
	if !s.Valid() {
		v.add("status", "must be A or I")
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
