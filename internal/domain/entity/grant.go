package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GrantType distinguishes money grants from in-kind grants.
type GrantType string

const (
	GrantMoney GrantType = "MONEY"
	GrantGoods GrantType = "GOODS"
)

// GrantRecord is one row of the grants appendix.
type GrantRecord struct {
	SeqNo            string              `json:"sequence_no"`
	GrantType        GrantType           `json:"grant_type"`
	Amount           decimal.NullDecimal `json:"amount"`
	RecipientName    string              `json:"recipient_name"`
	RecipientAddress string              `json:"recipient_address"`
}

// AidType distinguishes general from earmarked inter-government aid.
type AidType string

const (
	AidGeneral  AidType = "GENERAL"
	AidSpecific AidType = "SPECIFIC"
)

// AidRecord is one row of the inter-government-aid appendix.
type AidRecord struct {
	SeqNo         string              `json:"sequence_no"`
	AidType       AidType             `json:"aid_type"`
	Amount        decimal.NullDecimal `json:"amount"`
	RecipientName string              `json:"recipient_name"`
}

// HasSequence reports whether a sequence number marks a real recipient row.
// Subtotal and heading rows in the appendices carry no number.
func HasSequence(seqNo string) bool {
	s := strings.TrimSpace(seqNo)
	return s != "" && !strings.EqualFold(s, "nan")
}
