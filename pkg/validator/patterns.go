package validator

import "regexp"

const ipv4Octet = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`

const ipv4 = ipv4Octet + `\.` + ipv4Octet + `\.` + ipv4Octet + `\.` + ipv4Octet

const hostLabel = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`

var (
	// IPv4Pattern matches a dotted-quad IPv4 address.
	IPv4Pattern = regexp.MustCompile(`^` + ipv4 + `$`)

	// IPv4CSVPattern matches a comma separated list of IPv4 addresses.
	IPv4CSVPattern = regexp.MustCompile(`^` + ipv4 + `(?:\s*,\s*` + ipv4 + `)*$`)

	// MACPattern matches a 48-bit MAC address with ':' or '-' separators.
	MACPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{2}[:-]){5}[0-9a-fA-F]{2}$`)

	// UUIDPattern matches a canonical RFC 4122 UUID (versions 1 through 5).
	UUIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

	// DomainPattern matches a dotted domain name with an alphabetic TLD.
	DomainPattern = regexp.MustCompile(`^(?:` + hostLabel + `\.)+[a-zA-Z]{2,63}$`)

	// HostnamePattern matches a short or fully qualified host name.
	HostnamePattern = regexp.MustCompile(`^` + hostLabel + `(?:\.` + hostLabel + `)*$`)

	// OrganizationPrefixPattern matches 1 to 5 lowercase alphanumerics.
	OrganizationPrefixPattern = regexp.MustCompile(`^[a-z0-9]{1,5}$`)

	// PeacefulStringPattern rejects quotes, angle brackets and backticks.
	PeacefulStringPattern = regexp.MustCompile("^[^'\"<>`]*$")

	// EmailPattern is a permissive address check for notification targets.
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)
