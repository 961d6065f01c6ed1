package persist

import "strings"

// splitNational derives the network code and local number from a formatted
// national number such as "021 123 4567": the first space-delimited group is
// the network code, the rest joined without spaces is the local number. Both
// come back empty when the input has no spaces to split on.
func splitNational(formatted string) (networkCode, localNumber string) {
	fields := strings.Fields(formatted)
	if len(fields) < 2 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], "")
}
