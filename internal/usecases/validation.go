package usecases

import (
	"math"
	"regexp"
)

// Validation failure messages returned verbatim to API clients
const (
	MsgMissingRequired       = "Missing required fields: name, ticker, creator_address"
	MsgInvalidTicker         = "Ticker must be 1-16 characters, alphanumeric uppercase only"
	MsgInvalidAmount         = "Amount must be a non-negative number"
	MsgInvalidCreatorAddress = "Creator address must be a valid hex address"
	MsgInvalidEmail          = "Invalid email address"
)

var (
	tickerPattern = regexp.MustCompile(`^[A-Z0-9]{1,16}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateTicker reports whether s is 1-16 uppercase alphanumeric characters
func ValidateTicker(s string) bool {
	return tickerPattern.MatchString(s)
}

// ValidateAmount reports whether amount is a well-formed non-negative number
func ValidateAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}

// ValidateRequired reports whether every mandatory create field is non-empty
func ValidateRequired(name, ticker, creatorAddress string) bool {
	return name != "" && ticker != "" && creatorAddress != ""
}

// ValidateEmail reports whether s looks like an email address
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}
