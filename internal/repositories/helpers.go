package repositories

import "regexp"

// regexEscape neutralizes user input before it lands in a $regex query
func regexEscape(s string) string {
	return regexp.QuoteMeta(s)
}
