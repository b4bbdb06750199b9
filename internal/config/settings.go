// Package config loads Sprout's settings and keeps them current.
//
// Settings come from, highest precedence first: SPROUT_* environment
// variables, a .env file at the project root, sprout.yml at the project
// root, and built-in defaults. Components receive an immutable Settings
// snapshot; a file change replaces the snapshot wholesale.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FolderPolicy decides whether a component gets its own folder.
type FolderPolicy string

const (
	FolderAlways FolderPolicy = "always"
	FolderNever  FolderPolicy = "never"
	FolderAsk    FolderPolicy = "ask"
)

// StyleSetting selects the styling approach for new components.
type StyleSetting string

const (
	StyleCSS      StyleSetting = "css"
	StyleSCSS     StyleSetting = "scss"
	StyleTailwind StyleSetting = "tailwind"
	StyleNone     StyleSetting = "none"
	StyleAsk      StyleSetting = "ask"
)

// AskValue makes DefaultTailwindClass prompt for the class list.
const AskValue = "ask"

// Settings is a read-only snapshot of the effective configuration.
type Settings struct {
	UseFolder            FolderPolicy `yaml:"useFolder"`
	DefaultStyle         StyleSetting `yaml:"defaultStyle"`
	DefaultTailwindClass string       `yaml:"defaultTailwindClass"`
	AutoFormat           bool         `yaml:"autoFormat"`

	// DefaultExtension is used when the filename has no extension and the
	// project has no tsconfig.json. One of tsx, jsx, ts, js.
	DefaultExtension string `yaml:"defaultExtension"`

	Editor        string `yaml:"editor"`        // command that opens a file; empty prints the path
	Formatter     string `yaml:"formatter"`     // prints the formatted file on stdout
	FormatCommand string `yaml:"formatCommand"` // formats the file in place; fallback when Formatter yields nothing
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		UseFolder:            FolderAsk,
		DefaultStyle:         StyleAsk,
		DefaultTailwindClass: "container",
		AutoFormat:           true,
		DefaultExtension:     "tsx",
		Formatter:            "prettier",
	}
}

var (
	folderPolicies = []string{string(FolderAlways), string(FolderNever), string(FolderAsk)}
	styleSettings  = []string{string(StyleCSS), string(StyleSCSS), string(StyleTailwind), string(StyleNone), string(StyleAsk)}
	extensions     = []string{"tsx", "jsx", "ts", "js"}
)

// ParseFolderPolicy parses a useFolder value, case-insensitively.
func ParseFolderPolicy(raw string) (FolderPolicy, error) {
	v, err := oneOf("useFolder", raw, folderPolicies)
	return FolderPolicy(v), err
}

// ParseStyleSetting parses a defaultStyle value, case-insensitively.
func ParseStyleSetting(raw string) (StyleSetting, error) {
	v, err := oneOf("defaultStyle", raw, styleSettings)
	return StyleSetting(v), err
}

// ParseExtension parses a defaultExtension value. A leading dot is allowed.
func ParseExtension(raw string) (string, error) {
	return oneOf("defaultExtension", strings.TrimPrefix(strings.TrimSpace(raw), "."), extensions)
}

func oneOf(key, raw string, valid []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, ok := range valid {
		if v == ok {
			return v, nil
		}
	}

	msg := fmt.Sprintf("invalid %s %q (valid: %s)", key, raw, strings.Join(valid, ", "))
	if s := suggest(v, valid); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return "", fmt.Errorf("%s", msg)
}

// suggest returns the valid value closest to a misspelled one, or "".
func suggest(raw string, valid []string) string {
	if raw == "" {
		return ""
	}

	ranks := fuzzy.RankFindNormalizedFold(raw, valid)
	if len(ranks) == 0 {
		// Extra letters: look for a valid value hidden inside raw.
		for _, v := range valid {
			if fuzzy.MatchNormalizedFold(v, raw) {
				return v
			}
		}
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
