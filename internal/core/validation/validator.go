// Package validation checks guest input against the syntactic rules
// enforced at booking time. All checks are pure; the menu re-prompts
// and retries on failure, nothing here loops.
package validation

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/srgjo27/hotel_management/internal/core/domain"
)

var (
	nameRegex    = regexp.MustCompile(`^[A-Za-z -]+$`)
	contactRegex = regexp.MustCompile(`^[0-9]{7,15}$`)
	emailRegex   = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@[a-zA-Z0-9-]+(\.[a-zA-Z]{2,})+$`)
	digitsRegex  = regexp.MustCompile(`^[0-9]+$`)
)

// GuestInput carries the raw booking fields exactly as the guest typed
// them. StayDays stays a string here; it is parsed only after the
// digits rule has accepted it.
type GuestInput struct {
	Name          string `validate:"guestname"`
	ContactNumber string `validate:"contact"`
	EmailAddress  string `validate:"guestemail"`
	StayDays      string `validate:"staydays"`
	PaymentMethod string `validate:"required,oneof=Cash Credit"`
}

type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the guest-input rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("guestname", func(fl validator.FieldLevel) bool {
		return nameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		return contactRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("guestemail", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("staydays", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !digitsRegex.MatchString(s) {
			return false
		}
		days, err := strconv.Atoi(s)
		return err == nil && days >= 1
	})

	return &Validator{v: v}
}

// reasons maps the registered tags to the message shown on re-prompt.
var reasons = map[string]struct {
	field  string
	reason string
}{
	"guestname":  {"name", "use letters, spaces, or hyphens only"},
	"contact":    {"contact number", "enter digits only (7-15 characters)"},
	"guestemail": {"email address", "enter a valid email address"},
	"staydays":   {"number of days", "enter a positive whole number"},
	"required":   {"payment method", "enter 'Cash' or 'Credit'"},
	"oneof":      {"payment method", "enter 'Cash' or 'Credit'"},
}

// ValidateGuest checks every booking field and reports the first
// failure as a *domain.ValidationError.
func (vd *Validator) ValidateGuest(in GuestInput) error {
	return vd.translate(vd.v.Struct(in))
}

// Per-field entry points back the menu's one-prompt-at-a-time retry
// loops.

func (vd *Validator) ValidateName(s string) error {
	return vd.translate(vd.v.Var(s, "guestname"))
}

func (vd *Validator) ValidateContactNumber(s string) error {
	return vd.translate(vd.v.Var(s, "contact"))
}

func (vd *Validator) ValidateEmail(s string) error {
	return vd.translate(vd.v.Var(s, "guestemail"))
}

func (vd *Validator) ValidateStayDays(s string) error {
	return vd.translate(vd.v.Var(s, "staydays"))
}

func (vd *Validator) ValidatePaymentMethod(s string) error {
	return vd.translate(vd.v.Var(s, "required,oneof=Cash Credit"))
}

// ParseStayDays converts an already validated stay length.
func ParseStayDays(s string) (int, error) {
	days, err := strconv.Atoi(s)
	if err != nil || days < 1 {
		return 0, &domain.ValidationError{Field: "number of days", Reason: "enter a positive whole number"}
	}
	return days, nil
}

func (vd *Validator) translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if r, ok := reasons[verrs[0].Tag()]; ok {
			return &domain.ValidationError{Field: r.field, Reason: r.reason}
		}
		return &domain.ValidationError{Field: verrs[0].Field(), Reason: "invalid value"}
	}

	return err
}
