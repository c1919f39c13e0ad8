package metadata

import "strings"

var templateEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"$", `\$`,
)

// EncodeTemplateLiteral wraps s in backticks so it can be embedded in a
// script verbatim. Backslashes, backticks and dollar signs are escaped; the
// literal evaluates to exactly s.
func EncodeTemplateLiteral(s string) string {
	return "`" + templateEscaper.Replace(s) + "`"
}
