package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	MessageRequired = "Ce champ est obligatoire."
	MessagePhone    = "Merci de saisir un numéro valide."
	MessageDate     = "Merci de saisir une date valide."
)

// PhonePattern accepts digits, '+', parentheses, whitespace and hyphens,
// between 6 and 20 characters long. It is written in ECMA-262 syntax, where
// \s also covers no-break and other Unicode spaces.
const PhonePattern = `^[0-9+()\s-]{6,20}$`

// phoneRegexp is PhonePattern for RE2, whose \s is ASCII only. The class
// spells out the ECMA-262 whitespace set.
var phoneRegexp = regexp.MustCompile(`^[0-9+()\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}-]{6,20}$`)

// ErrUnknownKind is returned when a validator kind name cannot be resolved.
var ErrUnknownKind = errors.New("validation: unknown kind")

// Result is the outcome of a validator. The empty value means valid.
type Result string

// Valid reports whether the result carries no message.
func (r Result) Valid() bool {
	return r == ""
}

// String returns the user facing message.
func (r Result) String() string {
	return string(r)
}

// Kind names a validator in the closed set.
type Kind string

const (
	KindRequired  Kind = "required"
	KindPhone     Kind = "phone"
	KindBirthDate Kind = "birth-date"
)

// Validator evaluates a trimmed field value.
type Validator interface {
	Kind() Kind
	Evaluate(value string) Result
}

// Required returns the validator that only rejects empty values.
func Required() Validator {
	return requiredValidator{}
}

// Phone returns the validator for phone numbers.
func Phone() Validator {
	return phoneValidator{}
}

// DateOption configures the birth date validator.
type DateOption func(*birthDateValidator)

// WithClock overrides the time source used to reject future dates.
func WithClock(now func() time.Time) DateOption {
	return func(v *birthDateValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// BirthDate returns the validator rejecting unparseable and future dates.
func BirthDate(opts ...DateOption) Validator {
	v := &birthDateValidator{now: time.Now}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// ForKind resolves a validator by kind name. Date options only apply to
// KindBirthDate.
func ForKind(kind Kind, opts ...DateOption) (Validator, error) {
	switch Kind(strings.TrimSpace(string(kind))) {
	case KindRequired:
		return Required(), nil
	case KindPhone:
		return Phone(), nil
	case KindBirthDate:
		return BirthDate(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ValidateRequired rejects the empty string.
func ValidateRequired(value string) Result {
	if len(value) == 0 {
		return MessageRequired
	}
	return ""
}

// ValidatePhone rejects empty values and values outside PhonePattern.
func ValidatePhone(value string) Result {
	if len(value) == 0 {
		return MessageRequired
	}
	if !phoneRegexp.MatchString(value) {
		return MessagePhone
	}
	return ""
}

// ValidateBirthDate rejects empty, unparseable and future dates using the
// wall clock.
func ValidateBirthDate(value string) Result {
	return validateBirthDate(value, time.Now())
}

type requiredValidator struct{}

func (requiredValidator) Kind() Kind { return KindRequired }

func (requiredValidator) Evaluate(value string) Result {
	return ValidateRequired(value)
}

type phoneValidator struct{}

func (phoneValidator) Kind() Kind { return KindPhone }

func (phoneValidator) Evaluate(value string) Result {
	return ValidatePhone(value)
}

type birthDateValidator struct {
	now func() time.Time
}

func (*birthDateValidator) Kind() Kind { return KindBirthDate }

func (v *birthDateValidator) Evaluate(value string) Result {
	return validateBirthDate(value, v.now())
}

func validateBirthDate(value string, now time.Time) Result {
	if len(value) == 0 {
		return MessageRequired
	}
	parsed, ok := ParseDate(value)
	if !ok {
		return MessageDate
	}
	if parsed.After(now) {
		return MessageDate
	}
	return ""
}

// dateLayouts lists the accepted input formats. ISO date-only values
// (year, year-month, full date) resolve to UTC midnight. Slash dates and the
// local-time layouts resolve in local time, as browsers parse them.
var dateLayouts = []struct {
	layout string
	local  bool
}{
	{layout: "2006-01-02"},
	{layout: "2006-01"},
	{layout: "2006"},
	{layout: "2006/01/02", local: true},
	{layout: "2006-01-02T15:04", local: true},
	{layout: "2006-01-02T15:04:05", local: true},
	{layout: time.RFC3339},
	{layout: time.RFC3339Nano},
}

// ParseDate parses value using the accepted layouts.
func ParseDate(value string) (time.Time, bool) {
	for _, candidate := range dateLayouts {
		var (
			parsed time.Time
			err    error
		)
		if candidate.local {
			parsed, err = time.ParseInLocation(candidate.layout, value, time.Local)
		} else {
			parsed, err = time.Parse(candidate.layout, value)
		}
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
