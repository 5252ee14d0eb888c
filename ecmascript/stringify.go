package ecmascript

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Stringify returns s as a double-quoted string literal that parses back to
// exactly s in JavaScript and TypeScript.
//
// Quotes, backslashes and control characters are escaped, and so are U+2028
// and U+2029, which terminate lines in older engines. Non-ASCII text is kept
// verbatim. Invalid UTF-8 is replaced with U+FFFD.
func Stringify(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// ConstDecl renders `const <name> = <literal>;` followed by a newline.
func ConstDecl(name, value string) string {
	return "const " + name + " = " + Stringify(value) + ";\n"
}
