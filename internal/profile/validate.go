package profile

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating a candidate profile record. Every
// violation is collected; validation never stops at the first error.
type Result struct {
	Valid  bool
	Errors []string
}

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag name.
	_ = v.RegisterValidation("profile_color", isProfileColor)
	_ = v.RegisterValidation("absolute_uri", isAbsoluteURIField)
	_ = v.RegisterValidation("image_data_uri", isImageDataURIField)
	return v
}

var colorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

func isProfileColor(fl validator.FieldLevel) bool {
	return colorPattern.MatchString(fl.Field().String())
}

func isAbsoluteURIField(fl validator.FieldLevel) bool {
	return IsAbsoluteURI(fl.Field().String())
}

func isImageDataURIField(fl validator.FieldLevel) bool {
	return IsImageDataURI(fl.Field().String())
}

// IsAbsoluteURI reports whether s parses as a URI with a scheme.
func IsAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// IsImageDataURI reports whether s is a base64 data URI with an image MIME
// subtype, e.g. "data:image/png;base64,...".
func IsImageDataURI(s string) bool {
	if !strings.HasPrefix(s, "data:image/") {
		return false
	}
	meta, _, found := strings.Cut(s, ",")
	return found && strings.HasSuffix(meta, ";base64")
}

// sequenceFields must hold arrays when present in a candidate.
var sequenceFields = []string{"knowsLanguage", "skills", "accounts", "organizations", "knows"}

// Validate checks a candidate value for shape and format correctness. The
// candidate is the decoded JSON of a profile record; anything other than an
// object is rejected outright. All checks run independently and all error
// messages are returned together.
func Validate(candidate any) Result {
	fields, ok := candidate.(map[string]any)
	if !ok {
		return Result{Errors: []string{"profile must be a JSON object"}}
	}

	var errs []string

	for _, name := range []string{"profileBackgroundColor", "profileHighlightColor"} {
		if v, present := fields[name]; present {
			if s, isString := v.(string); !isString || engine.Var(s, "profile_color") != nil {
				errs = append(errs, name+" must be a 6-digit hex color")
			}
		}
	}

	if v, present := fields["photo"]; present {
		s, isString := v.(string)
		if !isString || (s != "" && engine.Var(s, "absolute_uri|image_data_uri") != nil) {
			errs = append(errs, "photo must be an absolute URL or a base64 image data URI")
		}
	}

	if v, present := fields["homepage"]; present {
		s, isString := v.(string)
		if !isString || (s != "" && engine.Var(s, "absolute_uri") != nil) {
			errs = append(errs, "homepage must be an absolute URL")
		}
	}

	if v, present := fields["phone"]; present && v != nil {
		if _, isString := v.(string); !isString {
			errs = append(errs, "phone must be a string")
		}
	}

	for _, name := range sequenceFields {
		if v, present := fields[name]; present {
			if _, isSequence := v.([]any); !isSequence {
				errs = append(errs, name+" must be an array")
			}
		}
	}

	if v, present := fields["knows"]; present {
		if entries, isSequence := v.([]any); isSequence {
			for _, entry := range entries {
				s, isString := entry.(string)
				if !isString || engine.Var(s, "absolute_uri") != nil {
					errs = append(errs, fmt.Sprintf("knows entry %v must be an absolute URI", entry))
				}
			}
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
