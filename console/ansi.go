package console

// ANSI styling helpers for the menu protocol. The escape codes are cosmetic
// and carry no protocol meaning.

const ansiReset = "\x1b[0m"

func style(code, s string) string {
	return "\x1b[" + code + "m" + s + ansiReset
}

func Bold(s string) string    { return style("1", s) }
func Red(s string) string     { return style("1;31", s) }
func Green(s string) string   { return style("1;32", s) }
func Yellow(s string) string  { return style("1;33", s) }
func Blue(s string) string    { return style("1;34", s) }
func Magenta(s string) string { return style("1;35", s) }
func Cyan(s string) string    { return style("1;36", s) }
func White(s string) string   { return style("1;37", s) }

// Banner renders black-on-white header text.
func Banner(s string) string { return style("30;47", s) }
