package qr

import "strings"

// wifiEscaper backslash-escapes the characters the WIFI: format reserves.
// A single-pass replacer cannot double-escape the backslash itself.
var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`"`, `\"`,
	`:`, `\:`,
)

func escapeWiFi(s string) string {
	return wifiEscaper.Replace(s)
}

const upperhex = "0123456789ABCDEF"

// percentEncode encodes a URI query value byte-wise, keeping unreserved
// characters and the slash. Space becomes %20, never +, because phone
// scanners parse these queries strictly.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
