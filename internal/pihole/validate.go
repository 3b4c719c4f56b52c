package pihole

import "net/url"

// ValidateAPIURL reports whether raw is usable as an appliance base URL: it
// must parse and carry both a scheme and a host. Malformed input is invalid,
// never an error.
func ValidateAPIURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ValidateAPIKey reports whether key is usable as an auth key. Any non-empty
// string is accepted; the appliance decides whether it is correct.
func ValidateAPIKey(key string) bool {
	return len(key) > 0
}
