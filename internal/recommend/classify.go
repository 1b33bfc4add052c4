package recommend

import (
	"errors"
	"strings"

	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrNoRecommendations = errors.New("no recommendations returned")
	ErrInvalidState      = errors.New("invalid state provided")
	ErrNotConfigured     = errors.New("ai provider api key not configured")
)

// Category is the user-facing class of an AI failure.
type Category string

const (
	CategoryConnectivity  Category = "connectivity"
	CategoryRateLimit     Category = "rate_limit"
	CategoryTimeout       Category = "timeout"
	CategoryAuthorization Category = "authorization"
	CategoryGeneric       Category = "generic"
)

var categoryMessages = map[Category]string{
	CategoryConnectivity:  "İnternet bağlantınızı kontrol edin",
	CategoryRateLimit:     "Kısa bir süre sonra tekrar deneyin",
	CategoryTimeout:       "Yanıt süresi aşıldı, lütfen tekrar deneyin",
	CategoryAuthorization: "Servis şu an kullanılamıyor",
	CategoryGeneric:       "Bir sorun oluştu",
}

// Message returns the localized text shown for the category.
func (c Category) Message() string {
	if m, ok := categoryMessages[c]; ok {
		return m
	}
	return categoryMessages[CategoryGeneric]
}

// categoryOf maps a localized message back to its category.
func categoryOf(message string) (Category, bool) {
	for c, m := range categoryMessages {
		if m == message {
			return c, true
		}
	}
	return "", false
}

// rules are checked in order; the first category with a matching substring wins.
var rules = []struct {
	category Category
	needles  []string
}{
	{CategoryConnectivity, []string{"fetch", "network", "connection refused", "no such host"}},
	{CategoryRateLimit, []string{"quota", "limit", "429"}},
	{CategoryTimeout, []string{"timeout", "timed out", "deadline exceeded"}},
	{CategoryAuthorization, []string{"API Key", "401", "403"}},
}

// UserError is a classified AI failure. Error returns only the localized
// message; the provider error stays reachable through Unwrap for logging.
type UserError struct {
	Category Category
	Message  string
	Err      error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Classify maps err onto one of the user-facing categories by matching its
// text. Errors that are already classified are returned as is.
func Classify(err error) *UserError {
	if err == nil {
		return nil
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	category := categorize(err.Error())
	switch {
	case errors.Is(err, ErrNotConfigured):
		category = CategoryAuthorization
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		category = CategoryRateLimit
	}
	return &UserError{Category: category, Message: categoryMessages[category], Err: err}
}

func categorize(text string) Category {
	for _, r := range rules {
		for _, n := range r.needles {
			if strings.Contains(text, n) {
				return r.category
			}
		}
	}
	return CategoryGeneric
}
