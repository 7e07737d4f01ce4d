package classifier

import "github.com/diillson/apba-dashboard-go/internal/domain/entity"

// LabelTable is a static code→label lookup with an "Other" default.
type LabelTable struct {
	labels map[string]string
}

// NewLabelTable copia o mapa recebido para que o chamador não possa alterá-lo.
func NewLabelTable(labels map[string]string) *LabelTable {
	cp := make(map[string]string, len(labels))
	for k, v := range labels {
		cp[k] = v
	}
	return &LabelTable{labels: cp}
}

// Label returns the label for code, or "Other".
func (t *LabelTable) Label(code string) string {
	if l, ok := t.labels[code]; ok {
		return l
	}
	return entity.OtherLabel
}

// Len returns the number of known codes.
func (t *LabelTable) Len() int {
	return len(t.labels)
}

// DefaultFunctionAreas maps government-function (urusan) codes of the
// organizational units to functional-area labels.
func DefaultFunctionAreas() map[string]string {
	return map[string]string{
		"1.01": "Education",
		"1.02": "Health",
		"1.03": "Public Works",
		"1.04": "Housing",
		"1.05": "Public Order",
		"1.06": "Social Affairs",
		"2.07": "Labour",
		"2.08": "Women Empowerment",
		"2.09": "Food",
		"2.11": "Environment",
		"2.13": "Community Empowerment",
		"2.15": "Transportation",
		"2.16": "Communication & Informatics",
		"2.17": "Cooperatives & SMEs",
		"2.18": "Investment",
		"2.19": "Youth & Sports",
		"2.22": "Culture",
		"2.23": "Libraries",
		"3.25": "Marine & Fisheries",
		"3.27": "Agriculture",
		"3.30": "Trade",
		"4.01": "Planning",
		"4.02": "Finance",
		"5.01": "Civil Service",
		"5.02": "Human Resources Development",
		"6.01": "Oversight",
		"7.01": "General Government",
		"9.01": "Aceh Special Affairs",
	}
}

// DefaultSectors maps the function prefix of special-allocation account
// codes to sector labels. It is narrower than the function-area table and
// uses its own wording for environment and marine sectors.
func DefaultSectors() map[string]string {
	return map[string]string{
		"1.01": "Education",
		"1.02": "Health",
		"1.03": "Public Works",
		"1.04": "Housing",
		"1.06": "Social Affairs",
		"2.09": "Food",
		"2.11": "Environment & Forestry",
		"2.13": "Community Empowerment",
		"2.16": "Communication",
		"2.22": "Culture",
		"3.25": "Marine",
		"3.27": "Agriculture",
		"9.01": "Aceh Special Affairs",
	}
}
