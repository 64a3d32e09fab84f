package generate

import (
	"go/token"
	"strings"
	"unicode"
)

// Name represents an identifier source: a key text or a schema name.
type Name string

// identifiers used by generated code
var reserved = map[string]bool{
	"ret":    true,
	"m":      true,
	"key":    true,
	"static": true,
}

// Exported returns the CamelCase identifier derived from the name, e.g.
// "record_label" -> "RecordLabel". A leading digit gets a "K" prefix. It
// returns an empty string when the name has no letter or digit.
func (n Name) Exported() string {
	parts := strings.FieldsFunc(string(n), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	ret := b.String()
	if ret == "" {
		return ""
	}
	if unicode.IsDigit([]rune(ret)[0]) {
		ret = "K" + ret
	}
	return ret
}

// Unexported returns the lowerCamelCase identifier derived from the name.
// Go keywords and identifiers taken by generated code get a "Value" suffix.
func (n Name) Unexported() string {
	ret := n.Exported()
	if ret == "" {
		return ""
	}
	runes := []rune(ret)
	runes[0] = unicode.ToLower(runes[0])
	ret = string(runes)
	if token.IsKeyword(ret) || reserved[ret] {
		ret += "Value"
	}
	return ret
}

func (n Name) String() string {
	return string(n)
}
