// Package naming turns a user-typed filename into the names a component
// needs: the file name on disk, a PascalCase identifier and a lowercase
// stem for stylesheets and class names.
package naming

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/simonhull/firebird-suite/sprout/internal/apperr"
)

// invalidChars may not appear in a component filename.
const invalidChars = `/\?%*:|"<>`

var errInvalidChars = errors.New(`Filename contains invalid characters (/ \ ? % * : | " < >).`)

// Parsed is the result of Resolve. Filename == Base + Ext.
type Parsed struct {
	Filename string
	Base     string
	Pascal   string
	Lower    string
	Ext      string
}

// ValidateFilename rejects names containing path separators or characters
// that are reserved on common file systems.
func ValidateFilename(raw string) error {
	if strings.ContainsAny(raw, invalidChars) {
		return errInvalidChars
	}
	return nil
}

// Resolve parses raw into a Parsed name. An extension typed by the user is
// kept verbatim; a name that starts with a dot has none. Otherwise .tsx is used for TypeScript projects and
// defaultExt (tsx, jsx, ts or js) for the rest, falling back to .tsx.
func Resolve(raw string, hasTSMarker bool, defaultExt string) (Parsed, error) {
	raw = strings.TrimSpace(raw)
	if err := ValidateFilename(raw); err != nil {
		return Parsed{}, apperr.InvalidName("filename "+raw+" has invalid characters", err.Error())
	}

	base, ext := splitExt(raw)
	if ext == "" {
		ext = inferExtension(hasTSMarker, defaultExt)
	}

	pascal := ToPascal(base)
	if pascal == "" || !isASCIILetter(rune(pascal[0])) {
		return Parsed{}, apperr.InvalidName(
			"component name "+raw+" does not start with a letter",
			"Component name must start with a letter (A-Z).",
		)
	}

	return Parsed{
		Filename: base + ext,
		Base:     base,
		Pascal:   pascal,
		Lower:    strings.ToLower(base),
		Ext:      ext,
	}, nil
}

// splitExt splits raw at its extension. Leading dots belong to the base, so
// ".env" has no extension. A lone trailing dot is dropped.
func splitExt(raw string) (base, ext string) {
	ext = filepath.Ext(strings.TrimLeft(raw, "."))
	base = strings.TrimSuffix(raw, ext)
	if ext == "." {
		ext = ""
	}
	return base, ext
}

func inferExtension(hasTSMarker bool, defaultExt string) string {
	if hasTSMarker {
		return ".tsx"
	}
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(defaultExt), ".")) {
	case "jsx":
		return ".jsx"
	case "ts":
		return ".ts"
	case "js":
		return ".js"
	default:
		return ".tsx"
	}
}

// ToPascal converts kebab, snake, space separated or camelCase input to
// PascalCase. Words break at every non-alphanumeric character and before
// every uppercase letter; each word is capitalized and the rest lowered.
//
//	ToPascal("user-profile.card") == "UserProfileCard"
//	ToPascal("userProfileCard")   == "UserProfileCard"
func ToPascal(s string) string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		switch {
		case !isASCIIAlnum(r):
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

func isASCIIAlnum(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9')
}
