package entity

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var programCodeRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
var functionPrefixRegex = regexp.MustCompile(`^(\d+\.\d+)`)

// SpecialAllocationRecord is one row of the special-autonomy (Otsus) appendix.
type SpecialAllocationRecord struct {
	AccountCode string              `json:"account_code"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Page        *int                `json:"page_number"`

	Sector       string `json:"sector"`
	ProgramLevel bool   `json:"program_level"`
}

// IsProgramCode reports whether code has exactly three numeric segments.
func IsProgramCode(code string) bool {
	return programCodeRegex.MatchString(code)
}

// FunctionPrefix extracts the leading "d.d" function code of an account code.
func FunctionPrefix(code string) string {
	m := functionPrefixRegex.FindStringSubmatch(code)
	if m == nil {
		return ""
	}
	return m[1]
}
