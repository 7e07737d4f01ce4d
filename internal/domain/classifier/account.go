package classifier

import (
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

// Spending categories of the account-code taxonomy.
const (
	CategoryPersonnel        = "Personnel Expenditure"
	CategoryGoodsServices    = "Goods & Services Expenditure"
	CategorySubsidy          = "Subsidy Expenditure"
	CategoryGrant            = "Grant Expenditure"
	CategorySocialAssistance = "Social Assistance Expenditure"
	CategoryCapital          = "Capital Expenditure"
	CategoryContingency      = "Contingency Expenditure"
	CategoryTransfer         = "Transfer Expenditure"
	CategoryOtherExpenditure = "Other Expenditure"
	CategoryRevenue          = "Revenue"
	CategoryFinancing        = "Financing"
	CategoryOther            = entity.OtherLabel
)

// Account code roots used by the summary views.
const (
	RevenuePrefix     = "4."
	ExpenditurePrefix = "5."
	FinancingPrefix   = "6."
)

// AccountRule maps an account-code prefix to a category.
type AccountRule struct {
	Prefix   string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Category string `json:"category" yaml:"category" toml:"category"`
}

// DefaultAccountRules returns the rule list in evaluation order.
// Narrow expenditure sub-codes must stay ahead of the "5." catch-all.
func DefaultAccountRules() []AccountRule {
	return []AccountRule{
		{Prefix: "5.1.01", Category: CategoryPersonnel},
		{Prefix: "5.1.02", Category: CategoryGoodsServices},
		{Prefix: "5.1.03", Category: CategorySubsidy},
		{Prefix: "5.1.05", Category: CategoryGrant},
		{Prefix: "5.1.06", Category: CategorySocialAssistance},
		{Prefix: "5.2", Category: CategoryCapital},
		{Prefix: "5.3", Category: CategoryContingency},
		{Prefix: "5.4", Category: CategoryTransfer},
		{Prefix: ExpenditurePrefix, Category: CategoryOtherExpenditure},
		{Prefix: RevenuePrefix, Category: CategoryRevenue},
		{Prefix: FinancingPrefix, Category: CategoryFinancing},
	}
}

// AccountClassifier evaluates its rules top-down; the first prefix wins.
type AccountClassifier struct {
	rules []AccountRule
}

// NewAccountClassifier cria um classificador com as regras na ordem dada.
func NewAccountClassifier(rules []AccountRule) *AccountClassifier {
	cp := make([]AccountRule, len(rules))
	copy(cp, rules)
	return &AccountClassifier{rules: cp}
}

// Classify returns the category of code, or "Other" when nothing matches.
func (c *AccountClassifier) Classify(code string) string {
	if code == "" {
		return CategoryOther
	}
	for _, rule := range c.rules {
		if strings.HasPrefix(code, rule.Prefix) {
			return rule.Category
		}
	}
	return CategoryOther
}

// Rules returns the rules in evaluation order.
func (c *AccountClassifier) Rules() []AccountRule {
	cp := make([]AccountRule, len(c.rules))
	copy(cp, c.rules)
	return cp
}

// IsExpenditure reports whether code belongs to the expenditure branch.
func IsExpenditure(code string) bool {
	return strings.HasPrefix(code, ExpenditurePrefix)
}

// IsRevenue reports whether code belongs to the revenue branch.
func IsRevenue(code string) bool {
	return strings.HasPrefix(code, RevenuePrefix)
}
