// Package qr defines the content types that can be encoded and builds the
// exact payload string each QR wire format expects. Payload construction is
// pure string work over already-validated fields and never fails.
package qr

import (
	"strconv"
	"strings"
)

// ContentType identifies one supported kind of QR content. Each type maps
// to exactly one validation routine and one payload format.
type ContentType string

// Supported content types.
const (
	TypeURL   ContentType = "url"
	TypeText  ContentType = "text"
	TypeWiFi  ContentType = "wifi"
	TypeVCard ContentType = "vcard"
	TypeEmail ContentType = "email"
	TypeSMS   ContentType = "sms"
	TypeGeo   ContentType = "geo"
	TypeTel   ContentType = "tel"
)

// WiFi security types as they appear in the WIFI: payload.
const (
	SecurityWPA    = "WPA"
	SecurityWPA2   = "WPA2"
	SecurityWPA3   = "WPA3"
	SecurityWEP    = "WEP"
	SecurityNopass = "NOPASS"
)

// Content is a validated value that knows its own wire payload.
type Content interface {
	Type() ContentType
	Payload() string
}

// URL is a website address encoded verbatim.
type URL struct {
	Value string
}

func (u URL) Type() ContentType { return TypeURL }
func (u URL) Payload() string   { return u.Value }

// Text is free-form text encoded verbatim.
type Text struct {
	Value string
}

func (t Text) Type() ContentType { return TypeText }
func (t Text) Payload() string   { return t.Value }

// WiFi holds network credentials for the WIFI: join format.
type WiFi struct {
	SSID     string
	Password string
	Security string
	Hidden   bool
}

func (w WiFi) Type() ContentType { return TypeWiFi }

// Payload builds the WIFI: string in the fixed segment order T, S, P, H.
// The P segment is omitted for open networks and empty passwords.
func (w WiFi) Payload() string {
	parts := []string{
		"T:" + w.Security,
		"S:" + escapeWiFi(w.SSID),
	}

	if w.Password != "" && w.Security != SecurityNopass {
		parts = append(parts, "P:"+escapeWiFi(w.Password))
	}

	if w.Hidden {
		parts = append(parts, "H:true")
	}

	return "WIFI:" + strings.Join(parts, ";") + ";;"
}

// VCard holds contact fields for a vCard 3.0 card. Name is the only
// required field.
type VCard struct {
	Name         string
	Phone        string
	Email        string
	Organization string
	Title        string
	URL          string
	Address      string
	Note         string
}

func (v VCard) Type() ContentType { return TypeVCard }

// Payload emits a vCard 3.0 document with lines in a fixed order. When the
// name splits into two or more words the last word becomes the surname in
// the structured N line.
func (v VCard) Payload() string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
	}

	words := strings.Fields(v.Name)
	if len(words) >= 2 {
		surname := words[len(words)-1]
		given := strings.Join(words[:len(words)-1], " ")
		lines = append(lines, "N:"+surname+";"+given+";;;")
	} else {
		lines = append(lines, "N:"+v.Name+";;;;")
	}

	lines = append(lines, "FN:"+v.Name)

	if v.Organization != "" {
		lines = append(lines, "ORG:"+v.Organization)
	}
	if v.Title != "" {
		lines = append(lines, "TITLE:"+v.Title)
	}
	if v.Phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+v.Phone)
	}
	if v.Email != "" {
		lines = append(lines, "EMAIL:"+v.Email)
	}
	if v.URL != "" {
		lines = append(lines, "URL:"+v.URL)
	}
	if v.Address != "" {
		lines = append(lines, "ADR:;;"+v.Address+";;;;")
	}
	if v.Note != "" {
		lines = append(lines, "NOTE:"+v.Note)
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// Email holds fields for a mailto: intent.
type Email struct {
	Address string
	Subject string
	Body    string
	CC      string
	BCC     string
}

func (e Email) Type() ContentType { return TypeEmail }

// Payload builds a mailto: URI. Present optional fields are percent-encoded
// and joined as a query string in the fixed key order subject, body, cc, bcc.
func (e Email) Payload() string {
	var params []string
	for _, kv := range []struct{ key, value string }{
		{"subject", e.Subject},
		{"body", e.Body},
		{"cc", e.CC},
		{"bcc", e.BCC},
	} {
		if kv.value != "" {
			params = append(params, kv.key+"="+percentEncode(kv.value))
		}
	}

	if len(params) > 0 {
		return "mailto:" + e.Address + "?" + strings.Join(params, "&")
	}

	return "mailto:" + e.Address
}

// SMS holds fields for an sms: intent.
type SMS struct {
	Phone   string
	Message string
}

func (s SMS) Type() ContentType { return TypeSMS }

func (s SMS) Payload() string {
	if s.Message != "" {
		return "sms:" + s.Phone + "?body=" + percentEncode(s.Message)
	}
	return "sms:" + s.Phone
}

// Geo holds coordinates for a geo: URI.
type Geo struct {
	Latitude  float64
	Longitude float64
	Query     string
}

func (g Geo) Type() ContentType { return TypeGeo }

func (g Geo) Payload() string {
	uri := "geo:" + formatCoord(g.Latitude) + "," + formatCoord(g.Longitude)
	if g.Query != "" {
		uri += "?q=" + percentEncode(g.Query)
	}
	return uri
}

// Tel holds a phone number for a tel: URI.
type Tel struct {
	Number string
}

func (t Tel) Type() ContentType { return TypeTel }
func (t Tel) Payload() string   { return "tel:" + t.Number }

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
