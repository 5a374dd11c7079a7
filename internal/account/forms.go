package account

import (
	"errors"
	"strings"

	"auction-web/internal/pageerrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FindIDForm is the find-id page form
type FindIDForm struct {
	Name    string `form:"name" validate:"required"`
	Mobile1 string `form:"mobile1" validate:"required"`
	Mobile2 string `form:"mobile2" validate:"required"`
}

// FindPasswordForm is the identity check of the find-password page
type FindPasswordForm struct {
	ID      string `form:"id" validate:"required"`
	Name    string `form:"name" validate:"required"`
	Mobile1 string `form:"mobile1" validate:"required"`
	Mobile2 string `form:"mobile2" validate:"required"`
}

// ResetForm is the password reset sub-form
type ResetForm struct {
	ID              string `form:"resetId"`
	NewPassword     string `form:"newPassword" validate:"required,min=4"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// JoinForm is the part of the sign-up form checked before submit
type JoinForm struct {
	ID      string `form:"id"`
	Zipcode string `form:"zipcode" validate:"required"`
	Pass1   string `form:"pass1"`
	Pass2   string `form:"pass2" validate:"eqfield=Pass1"`
}

// DigitsOnly drops everything but digits, as the mobile inputs do
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (f *FindIDForm) normalise() {
	f.Name = strings.TrimSpace(f.Name)
	f.Mobile1 = DigitsOnly(f.Mobile1)
	f.Mobile2 = DigitsOnly(f.Mobile2)
}

func (f *FindPasswordForm) normalise() {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Mobile1 = DigitsOnly(f.Mobile1)
	f.Mobile2 = DigitsOnly(f.Mobile2)
}

// failedTags lists the validator tags that failed, keyed by struct field
func failedTags(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.StructField()] = fe.Tag()
		}
	}
	return out
}

func checkRequired(form any) error {
	if err := validate.Struct(form); err != nil {
		return pageerrors.ErrMissingFields
	}
	return nil
}

// checkReset reports the first problem in the order the page alerts them:
// a blank entry, a mismatch, then a short password.
func checkReset(f ResetForm) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	tags := failedTags(err)
	switch {
	case tags["NewPassword"] == "required" || tags["ConfirmPassword"] == "required":
		return pageerrors.ErrPasswordRequired
	case tags["ConfirmPassword"] == "eqfield":
		return pageerrors.ErrPasswordMismatch
	case tags["NewPassword"] == "min":
		return pageerrors.ErrPasswordTooShort
	default:
		return pageerrors.ErrPasswordRequired
	}
}
