package entity

// UnitType is the institutional kind of an organizational unit (SKPD).
type UnitType string

const (
	UnitDepartment          UnitType = "DEPARTMENT"
	UnitAgency              UnitType = "AGENCY"
	UnitSupervisory         UnitType = "SUPERVISORY"
	UnitSecretariat         UnitType = "SECRETARIAT"
	UnitRegionalSecretariat UnitType = "REGIONAL_SECRETARIAT"
	UnitOther               UnitType = "OTHER"
)

// OrganizationalUnit owns the ledger pages in [PageStart, PageEnd].
type OrganizationalUnit struct {
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Type         UnitType `json:"type" yaml:"type" toml:"type"`
	FunctionCode string   `json:"function_code" yaml:"function_code" toml:"function_code"`
	PageStart    int      `json:"page_start" yaml:"page_start" toml:"page_start"`
	PageEnd      int      `json:"page_end" yaml:"page_end" toml:"page_end"`

	FunctionArea string `json:"function_area,omitempty" yaml:"-" toml:"-"`
}

// Contains reports whether page falls inside the unit's inclusive range.
func (u OrganizationalUnit) Contains(page int) bool {
	return u.PageStart <= page && page <= u.PageEnd
}
