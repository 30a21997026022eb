package wizard

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"shootbook/models"
)

const maxNameLength = 120

var (
	validate = validator.New()

	wechatPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{5,19}$`)
	instagramPattern = regexp.MustCompile(`^[A-Za-z0-9._]{1,30}$`)
	phonePattern     = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
	phoneStrip       = regexp.MustCompile(`[^\d+]`)
)

// contactRule validates and normalizes the value for one contact method.
type contactRule struct {
	valid     func(value string) bool
	normalize func(value string) string
	message   string
}

var contactRules = map[models.ContactMethod]contactRule{
	models.ContactEmail: {
		valid:     func(v string) bool { return validate.Var(strings.TrimSpace(v), "required,email") == nil },
		normalize: func(v string) string { return strings.ToLower(strings.TrimSpace(v)) },
		message:   "enter a valid email address",
	},
	models.ContactWeChat: {
		valid:     func(v string) bool { return wechatPattern.MatchString(strings.TrimSpace(v)) },
		normalize: func(v string) string { return strings.ToLower(strings.TrimSpace(v)) },
		message:   "WeChat ID must be 6-20 characters, start with a letter and use letters, digits, _ or -",
	},
	models.ContactInstagram: {
		valid:     validInstagram,
		normalize: func(v string) string { return strings.ToLower(trimHandle(v)) },
		message:   "Instagram handle must be 1-30 letters, digits, . or _ without consecutive or trailing dots",
	},
	models.ContactPhone: {
		valid:     func(v string) bool { return phonePattern.MatchString(stripPhone(v)) },
		normalize: stripPhone,
		message:   "enter a phone number with 8-15 digits, optionally starting with +",
	},
}

// ContactMethods lists the accepted contact methods.
func ContactMethods() []models.ContactMethod {
	return []models.ContactMethod{models.ContactEmail, models.ContactWeChat, models.ContactInstagram, models.ContactPhone}
}

func validInstagram(v string) bool {
	h := trimHandle(v)
	return instagramPattern.MatchString(h) && !strings.Contains(h, "..") && !strings.HasSuffix(h, ".")
}

func trimHandle(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "@")
}

func stripPhone(v string) string {
	return phoneStrip.ReplaceAllString(v, "")
}

// NormalizeName collapses runs of whitespace and trims the ends.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeContact returns the canonical stored form of a contact value.
// Unknown methods are returned trimmed.
func NormalizeContact(method models.ContactMethod, value string) string {
	rule, ok := contactRules[method]
	if !ok {
		return strings.TrimSpace(value)
	}
	return rule.normalize(value)
}

func checkName(name string) string {
	n := NormalizeName(name)
	switch {
	case n == "":
		return "name is required"
	case utf8.RuneCountInString(n) > maxNameLength:
		return "name must be at most 120 characters"
	}
	return ""
}

// checkContact returns the error messages for method and value, keyed
// "method" and "value".
func checkContact(method models.ContactMethod, value string) map[string]string {
	errs := map[string]string{}
	rule, ok := contactRules[method]
	if !ok {
		errs["method"] = "choose email, wechat, instagram or phone"
		return errs
	}
	if strings.TrimSpace(value) == "" {
		errs["value"] = "contact is required"
		return errs
	}
	if !rule.valid(value) {
		errs["value"] = rule.message
	}
	return errs
}
