// Package validate rejects malformed input before any encoding work
// happens. Every function either returns the validated (and possibly
// normalized) value or a *Error naming the offending value and the
// expected format.
package validate

import (
	"net"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/colonyops/qrforge/internal/core/qr"
)

// MaxTextLength is the practical payload ceiling. Version 40 with L error
// correction holds ~4296 alphanumeric characters; beyond 4000 the symbol
// becomes unreliable to scan.
const MaxTextLength = 4000

// MaxSSIDLength is the 802.11 SSID byte limit.
const MaxSSIDLength = 32

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)

	// phoneSeparators are the formatting characters stripped before the
	// digit check.
	phoneSeparators = regexp.MustCompile(`[\s\-.()]+`)
)

// URL validates a URL, prepending https:// when no scheme is present.
func URL(raw string) (string, error) {
	if raw == "" {
		return "", Errorf("URL cannot be empty")
	}

	u := raw
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}

	parsed, err := url.Parse(u)
	if err != nil || !validHost(parsed) || strings.ContainsAny(u, " \t") {
		return "", Errorf("invalid URL format: %q. URL must be a valid http:// or https:// address", u)
	}

	return u, nil
}

func validHost(u *url.URL) bool {
	host := u.Hostname()
	if host == "" {
		return false
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return true
	}
	// Require a registrable-looking name with at least one dot and no
	// empty labels.
	if !strings.Contains(host, ".") {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

// Email validates an email address.
func Email(raw string) (string, error) {
	if raw == "" {
		return "", Errorf("email address cannot be empty")
	}

	if !emailRe.MatchString(raw) {
		return "", Errorf("invalid email format: %q. Please provide a valid email address (e.g., user@example.com)", raw)
	}

	return raw, nil
}

// Phone validates a phone number and returns it normalized to an optional
// leading + followed by digits only.
func Phone(raw string) (string, error) {
	if raw == "" {
		return "", Errorf("phone number cannot be empty")
	}

	normalized := phoneSeparators.ReplaceAllString(raw, "")
	if !phoneRe.MatchString(normalized) {
		return "", Errorf("invalid phone number format: %q. Phone number should contain 7-15 digits, optionally starting with +", raw)
	}

	return normalized, nil
}

// WiFiSecurity validates and normalizes a WiFi security type. The aliases
// NONE and OPEN normalize to NOPASS.
func WiFiSecurity(raw string) (string, error) {
	security := strings.ToUpper(raw)

	if security == "NONE" || security == "OPEN" {
		security = qr.SecurityNopass
	}

	switch security {
	case qr.SecurityWPA, qr.SecurityWPA2, qr.SecurityWPA3, qr.SecurityWEP, qr.SecurityNopass:
		return security, nil
	}

	return "", Errorf("invalid WiFi security type: %q. Must be one of: NOPASS, WEP, WPA, WPA2, WPA3", raw)
}

// WiFi validates network credentials. Open networks get their password
// normalized to empty; every other security type requires one. The caller
// sets the Hidden flag on the returned value.
func WiFi(ssid, password, security string) (qr.WiFi, error) {
	if ssid == "" {
		return qr.WiFi{}, Errorf("WiFi SSID cannot be empty")
	}

	if n := utf8.RuneCountInString(ssid); n > MaxSSIDLength {
		return qr.WiFi{}, Errorf("WiFi SSID too long (%d chars). Maximum is %d characters", n, MaxSSIDLength)
	}

	security, err := WiFiSecurity(security)
	if err != nil {
		return qr.WiFi{}, err
	}

	if security != qr.SecurityNopass && password == "" {
		return qr.WiFi{}, Errorf("password is required for %s security. Use --security nopass for open networks", security)
	}

	if security == qr.SecurityNopass {
		password = ""
	}

	return qr.WiFi{SSID: ssid, Password: password, Security: security}, nil
}

// VCard validates contact fields. Name is required; each optional field is
// validated with its own rule when present. Organization and title are
// trimmed and otherwise passed through.
func VCard(card qr.VCard) (qr.VCard, error) {
	if card.Name == "" {
		return qr.VCard{}, Errorf("name is required for vCard. Use --name to specify the contact name")
	}

	card.Name = strings.TrimSpace(card.Name)

	var err error
	if card.Phone != "" {
		if card.Phone, err = Phone(card.Phone); err != nil {
			return qr.VCard{}, err
		}
	}
	if card.Email != "" {
		if card.Email, err = Email(card.Email); err != nil {
			return qr.VCard{}, err
		}
	}
	if card.URL != "" {
		if card.URL, err = URL(card.URL); err != nil {
			return qr.VCard{}, err
		}
	}

	card.Organization = strings.TrimSpace(card.Organization)
	card.Title = strings.TrimSpace(card.Title)

	return card, nil
}

// OutputPath validates an output file path: the extension must be .png or
// .svg and the parent directory must exist and be writable. User-relative
// notation is expanded and the result is absolute.
func OutputPath(raw string) (string, error) {
	if raw == "" {
		return "", Errorf("output path is required. Use --output to specify the file path")
	}

	expanded, err := expandUser(raw)
	if err != nil {
		return "", Errorf("cannot resolve home directory for %q", raw)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", Errorf("invalid output path: %q", raw)
	}

	ext := strings.ToLower(filepath.Ext(abs))
	if ext != ".png" && ext != ".svg" {
		return "", Errorf("invalid output format: %q. Output file must have .png or .svg extension", ext)
	}

	parent := filepath.Dir(abs)
	info, err := os.Stat(parent)
	if os.IsNotExist(err) {
		return "", Errorf("output directory does not exist: %q. Please create the directory first or choose a different path", parent)
	}
	if err != nil || !info.IsDir() {
		return "", Errorf("output directory is not accessible: %q", parent)
	}

	if !dirWritable(parent) {
		return "", Errorf("output directory is not writable: %q. Please check permissions or choose a different path", parent)
	}

	return abs, nil
}

// OutputFormat validates an explicit output format override. Empty means
// no override: the format comes from the output path extension.
func OutputFormat(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	format := strings.ToLower(raw)
	if format != "png" && format != "svg" {
		return "", Errorf("invalid output format: %q. Must be png or svg", raw)
	}

	return format, nil
}

// Text validates free-form text against the payload ceiling.
func Text(raw string) (string, error) {
	if raw == "" {
		return "", Errorf("text cannot be empty")
	}

	if n := utf8.RuneCountInString(raw); n > MaxTextLength {
		return "", Errorf("text too long (%d chars). Maximum recommended length is %d characters for reliable scanning", n, MaxTextLength)
	}

	return raw, nil
}

// LatLon validates geographic coordinates.
func LatLon(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return Errorf("invalid latitude %v: must be between -90 and 90", lat)
	}
	if lon < -180 || lon > 180 {
		return Errorf("invalid longitude %v: must be between -180 and 180", lon)
	}
	return nil
}

func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// dirWritable probes the directory with a temp file; permission bits alone
// are unreliable across mount options and ACLs.
func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".qrforge-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
