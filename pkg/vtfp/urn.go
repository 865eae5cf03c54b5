package vtfp

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// URNPrefix is the fixed scheme prefix of a fingerprint URN.
const URNPrefix = "urn:smpte:imf-vtfp:"

// Hex payload length bounds. A payload may be any prefix of the full
// 40-character encoding down to 4 characters; shorter values are rejected
// rather than treated as non-matching.
const (
	minHexLen = 4
	maxHexLen = 2 * len(Fingerprint{})
)

// Hex returns the full 40-character lowercase hexadecimal form,
// most-significant octet first.
func (f Fingerprint) Hex() string {
	return hex.EncodeToString(f[:])
}

// URN returns the full-length URN form, URNPrefix plus Hex.
func (f Fingerprint) URN() string {
	return URNPrefix + f.Hex()
}

// TruncatedURN returns the URN form with the hex payload truncated to n
// characters. n must lie in [4, 40].
func (f Fingerprint) TruncatedURN(n int) (string, error) {
	if n < minHexLen || n > maxHexLen {
		return "", fmt.Errorf("%w: truncation length %d outside [%d, %d]", ErrMalformedURN, n, minHexLen, maxHexLen)
	}
	return URNPrefix + f.Hex()[:n], nil
}

// ParseURN strips the fixed prefix from a fingerprint URN and returns the
// validated hex payload in canonical lowercase. The prefix must match
// exactly; the payload must be 4-40 hex characters (input case does not
// matter).
func ParseURN(s string) (string, error) {
	payload, ok := strings.CutPrefix(s, URNPrefix)
	if !ok {
		return "", fmt.Errorf("%w: missing %q prefix", ErrMalformedURN, URNPrefix)
	}
	return normalizeHex(payload)
}

// FormatURN is the reverse of ParseURN: it validates a hex payload and
// prepends the fixed prefix.
func FormatURN(hexPayload string) (string, error) {
	payload, err := normalizeHex(hexPayload)
	if err != nil {
		return "", err
	}
	return URNPrefix + payload, nil
}

// normalizeHex validates payload against the 4-40 character hex grammar and
// lowercases it.
func normalizeHex(payload string) (string, error) {
	if len(payload) < minHexLen || len(payload) > maxHexLen {
		return "", fmt.Errorf("%w: hex payload length %d outside [%d, %d]", ErrMalformedURN, len(payload), minHexLen, maxHexLen)
	}
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return "", fmt.Errorf("%w: non-hex character %q at position %d", ErrMalformedURN, c, i)
		}
	}
	return strings.ToLower(payload), nil
}

// Match reports whether two fingerprint values are equivalent. Each side may
// be a URN or a bare hex payload, full-length or truncated to no fewer than 4
// characters. The shorter payload is compared against the same-length prefix
// of the longer, case-insensitively. Malformed input is an error, never a
// silent non-match.
func Match(a, b string) (bool, error) {
	ha, err := matchPayload(a)
	if err != nil {
		return false, fmt.Errorf("first value: %w", err)
	}
	hb, err := matchPayload(b)
	if err != nil {
		return false, fmt.Errorf("second value: %w", err)
	}

	n := min(len(ha), len(hb))
	return ha[:n] == hb[:n], nil
}

// matchPayload extracts the normalized hex payload from a URN or bare hex
// value.
func matchPayload(s string) (string, error) {
	if strings.HasPrefix(s, URNPrefix) {
		return ParseURN(s)
	}
	return normalizeHex(s)
}
