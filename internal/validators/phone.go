package validators

import "strings"

// IsPhoneValid accepts 10-digit numbers with an optional +country prefix.
// Contact fields feed the mirror as plain text, so only shape is checked.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	phone = strings.ReplaceAll(phone, " ", "")

	if len(phone) < 10 || len(phone) > 13 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
