package qr

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiFiPayload(t *testing.T) {
	tests := []struct {
		name string
		wifi WiFi
		want string
	}{
		{
			name: "wpa with password",
			wifi: WiFi{SSID: "HomeNet", Password: "secret123", Security: "WPA"},
			want: "WIFI:T:WPA;S:HomeNet;P:secret123;;",
		},
		{
			name: "nopass omits password segment",
			wifi: WiFi{SSID: "CafeGuest", Password: "", Security: "NOPASS"},
			want: "WIFI:T:NOPASS;S:CafeGuest;;",
		},
		{
			name: "nopass omits password segment even if password set",
			wifi: WiFi{SSID: "CafeGuest", Password: "leftover", Security: "NOPASS"},
			want: "WIFI:T:NOPASS;S:CafeGuest;;",
		},
		{
			name: "empty password omitted for wpa2",
			wifi: WiFi{SSID: "Net", Password: "", Security: "WPA2"},
			want: "WIFI:T:WPA2;S:Net;;",
		},
		{
			name: "hidden network",
			wifi: WiFi{SSID: "HiddenNet", Password: "pw", Security: "WPA2", Hidden: true},
			want: "WIFI:T:WPA2;S:HiddenNet;P:pw;H:true;;",
		},
		{
			name: "special characters escaped",
			wifi: WiFi{SSID: `my;net`, Password: `p,a:s"s\w`, Security: "WPA"},
			want: `WIFI:T:WPA;S:my\;net;P:p\,a\:s\"s\\w;;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.wifi.Payload())
		})
	}
}

func TestEscapeWiFi_ReservedCharacters(t *testing.T) {
	// Each reserved character must be preceded by exactly one backslash;
	// no other characters may be altered.
	for _, c := range []string{`\`, `;`, `,`, `"`, `:`} {
		t.Run("char "+c, func(t *testing.T) {
			escaped := escapeWiFi("a" + c + "b")
			assert.Equal(t, `a\`+c+"b", escaped)
		})
	}

	t.Run("backslash escaped first, no double escaping", func(t *testing.T) {
		assert.Equal(t, `\\\;`, escapeWiFi(`\;`))
	})

	t.Run("plain text untouched", func(t *testing.T) {
		assert.Equal(t, "plain text 123", escapeWiFi("plain text 123"))
	})
}

func TestVCardPayload(t *testing.T) {
	t.Run("two-word name splits into surname and given", func(t *testing.T) {
		payload := VCard{Name: "John Smith"}.Payload()
		lines := strings.Split(payload, "\n")

		assert.Equal(t, "BEGIN:VCARD", lines[0])
		assert.Equal(t, "VERSION:3.0", lines[1])
		assert.Contains(t, lines, "N:Smith;John;;;")
		assert.Contains(t, lines, "FN:John Smith")
		assert.Equal(t, "END:VCARD", lines[len(lines)-1])
	})

	t.Run("three-word name keeps middle name in given field", func(t *testing.T) {
		payload := VCard{Name: "Jane van Dyke"}.Payload()
		assert.Contains(t, payload, "N:Dyke;Jane van;;;")
	})

	t.Run("single word name", func(t *testing.T) {
		payload := VCard{Name: "Cher"}.Payload()
		assert.Contains(t, payload, "N:Cher;;;;")
		assert.Contains(t, payload, "FN:Cher")
	})

	t.Run("optional fields in fixed order", func(t *testing.T) {
		payload := VCard{
			Name:         "Jane Doe",
			Phone:        "5551234567",
			Email:        "jane@example.com",
			Organization: "Acme Inc",
			Title:        "Engineer",
			URL:          "https://example.com",
			Address:      "1 Main St",
			Note:         "meets on tuesdays",
		}.Payload()

		want := strings.Join([]string{
			"BEGIN:VCARD",
			"VERSION:3.0",
			"N:Doe;Jane;;;",
			"FN:Jane Doe",
			"ORG:Acme Inc",
			"TITLE:Engineer",
			"TEL;TYPE=CELL:5551234567",
			"EMAIL:jane@example.com",
			"URL:https://example.com",
			"ADR:;;1 Main St;;;;",
			"NOTE:meets on tuesdays",
			"END:VCARD",
		}, "\n")
		assert.Equal(t, want, payload)
	})

	t.Run("absent fields emit no lines", func(t *testing.T) {
		payload := VCard{Name: "Solo"}.Payload()
		assert.NotContains(t, payload, "ORG:")
		assert.NotContains(t, payload, "TEL;")
		assert.NotContains(t, payload, "EMAIL:")
	})
}

func TestEmailPayload(t *testing.T) {
	t.Run("plain address", func(t *testing.T) {
		assert.Equal(t, "mailto:a@example.com", Email{Address: "a@example.com"}.Payload())
	})

	t.Run("subject is percent encoded", func(t *testing.T) {
		payload := Email{Address: "a@example.com", Subject: "Hi there"}.Payload()
		assert.Equal(t, "mailto:a@example.com?subject=Hi%20there", payload)
	})

	t.Run("fixed query key order", func(t *testing.T) {
		payload := Email{
			Address: "a@example.com",
			Subject: "s",
			Body:    "b",
			CC:      "c@example.com",
			BCC:     "d@example.com",
		}.Payload()
		assert.Equal(t, "mailto:a@example.com?subject=s&body=b&cc=c%40example.com&bcc=d%40example.com", payload)
	})

	t.Run("round-trips through a URI parser", func(t *testing.T) {
		payload := Email{Address: "a@example.com", Subject: "Hi there", Body: "1 & 2"}.Payload()

		u, err := url.Parse(payload)
		require.NoError(t, err)
		assert.Equal(t, "mailto", u.Scheme)
		assert.Equal(t, "a@example.com", u.Opaque)

		q, err := url.ParseQuery(u.RawQuery)
		require.NoError(t, err)
		assert.Equal(t, "Hi there", q.Get("subject"))
		assert.Equal(t, "1 & 2", q.Get("body"))
	})
}

func TestSMSPayload(t *testing.T) {
	assert.Equal(t, "sms:+15551234567", SMS{Phone: "+15551234567"}.Payload())
	assert.Equal(t, "sms:5551234567?body=On%20my%20way", SMS{Phone: "5551234567", Message: "On my way"}.Payload())
}

func TestGeoPayload(t *testing.T) {
	assert.Equal(t, "geo:37.7749,-122.4194", Geo{Latitude: 37.7749, Longitude: -122.4194}.Payload())
	assert.Equal(t,
		"geo:37.7749,-122.4194?q=Golden%20Gate%20Park",
		Geo{Latitude: 37.7749, Longitude: -122.4194, Query: "Golden Gate Park"}.Payload(),
	)
}

func TestTelPayload(t *testing.T) {
	assert.Equal(t, "tel:+15551234567", Tel{Number: "+15551234567"}.Payload())
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"Hi there", "Hi%20there"},
		{"a&b=c", "a%26b%3Dc"},
		{"100%", "100%25"},
		{"a/b", "a/b"},
		{"unreserved-._~", "unreserved-._~"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := percentEncode(tt.in)
			assert.Equal(t, tt.want, got)

			decoded, err := url.QueryUnescape(got)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}
