// Package feedback accepts visitor feedback and forwards it by e-mail.
package feedback

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/bilmem-net/ai-hediye/internal/validation"
)

var (
	ErrRateLimited         = errors.New("feedback rate limit exceeded")
	ErrMailerNotConfigured = errors.New("feedback mailer not configured")
)

// User-facing messages.
const (
	msgTooShort     = "Mesaj çok kısa."
	msgBadEmail     = "Geçersiz e-posta adresi."
	msgRateLimited  = "Çok fazla istek gönderdiniz. Lütfen bir süre bekleyin."
	msgConfigError  = "Sunucu yapılandırma hatası."
	msgGenericError = "İşlem sırasında bir hata oluştu."
)

var loosePattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func init() {
	if err := validation.Register("loose_email", func(fl validator.FieldLevel) bool {
		return loosePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Feedback is a validated submission.
type Feedback struct {
	Subject   string `json:"subject"`
	Message   string `json:"message" validate:"min=3"`
	Email     string `json:"email" validate:"omitempty,loose_email"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	UserAgent string `json:"userAgent"`
}

// request is the wire shape. Message and Honeypot are loosely typed so a
// non-string message can be rejected as too short and any truthy honeypot
// value trips the trap.
type request struct {
	Subject   string `json:"subject"`
	Message   any    `json:"message"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	UserAgent string `json:"userAgent"`
	Honeypot  any    `json:"honeypot"`
}

func (r request) trapped() bool {
	switch v := r.Honeypot.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

func (r request) feedback() Feedback {
	msg, _ := r.Message.(string)
	return Feedback{
		Subject:   r.Subject,
		Message:   msg,
		Email:     r.Email,
		Type:      r.Type,
		URL:       r.URL,
		UserAgent: r.UserAgent,
	}
}

var validationMessages = map[string]string{
	"message": msgTooShort,
	"email":   msgBadEmail,
}

// Validate returns the user-facing message of the first failed rule, or "".
func (f Feedback) Validate() string {
	errs := validation.Struct(f, validationMessages)
	return validation.First(errs, "message", "email")
}
