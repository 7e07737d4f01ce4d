package classifier

import (
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

// Registry is the ordered table of organizational units and their ledger
// page ranges. Ranges may overlap; the earliest registered unit wins.
type Registry struct {
	units []entity.OrganizationalUnit
}

// NewRegistry cria um registro preservando a ordem de registro.
func NewRegistry(units ...entity.OrganizationalUnit) *Registry {
	cp := make([]entity.OrganizationalUnit, len(units))
	copy(cp, units)
	return &Registry{units: cp}
}

// Resolve returns the name of the unit owning page, or "N/A".
func (r *Registry) Resolve(page *int) string {
	if page == nil {
		return entity.UnitNotAvailable
	}
	for _, u := range r.units {
		if u.Contains(*page) {
			return u.Name
		}
	}
	return entity.UnitNotAvailable
}

// Units returns a copy of the registered units in registration order.
func (r *Registry) Units() []entity.OrganizationalUnit {
	cp := make([]entity.OrganizationalUnit, len(r.units))
	copy(cp, r.units)
	return cp
}

// Lookup finds a unit by name.
func (r *Registry) Lookup(name string) (entity.OrganizationalUnit, bool) {
	for _, u := range r.units {
		if u.Name == name {
			return u, true
		}
	}
	return entity.OrganizationalUnit{}, false
}

// Overlap describes two registered units sharing at least one page.
type Overlap struct {
	First  string
	Second string
}

// Overlaps lists every pair of units whose ranges intersect, in
// registration order. Nothing is rejected; the list is informational.
func (r *Registry) Overlaps() []Overlap {
	var out []Overlap
	for i := 0; i < len(r.units); i++ {
		for j := i + 1; j < len(r.units); j++ {
			a, b := r.units[i], r.units[j]
			if a.PageStart <= b.PageEnd && b.PageStart <= a.PageEnd {
				out = append(out, Overlap{First: a.Name, Second: b.Name})
			}
		}
	}
	return out
}

// DefaultUnits is the SKPD registry of the APBA 2025 ledger appendix.
// The regional secretariat is registered late although its pages come first.
func DefaultUnits() []entity.OrganizationalUnit {
	return []entity.OrganizationalUnit{
		{Name: "Dinas Pendidikan", Type: entity.UnitDepartment, FunctionCode: "1.01", PageStart: 55, PageEnd: 82},
		{Name: "Bappeda", Type: entity.UnitAgency, FunctionCode: "4.01", PageStart: 83, PageEnd: 99},
		{Name: "Dinas Pendidikan Dayah", Type: entity.UnitDepartment, FunctionCode: "1.01", PageStart: 100, PageEnd: 204},
		{Name: "Dinas Kesehatan", Type: entity.UnitDepartment, FunctionCode: "1.02", PageStart: 205, PageEnd: 215},
		{Name: "Satpol PP & WH", Type: entity.UnitOther, FunctionCode: "1.05", PageStart: 216, PageEnd: 250},
		{Name: "Dinas Sosial", Type: entity.UnitDepartment, FunctionCode: "1.06", PageStart: 251, PageEnd: 280},
		{Name: "Dinas Pemberdayaan Perempuan & PA", Type: entity.UnitDepartment, FunctionCode: "2.08", PageStart: 281, PageEnd: 370},
		{Name: "Dinas Pangan", Type: entity.UnitDepartment, FunctionCode: "2.09", PageStart: 371, PageEnd: 400},
		{Name: "Dinas Kominfo & Persandian", Type: entity.UnitDepartment, FunctionCode: "2.16", PageStart: 401, PageEnd: 462},
		{Name: "Dinas PUPR", Type: entity.UnitDepartment, FunctionCode: "1.03", PageStart: 463, PageEnd: 473},
		{Name: "DPMPTSP", Type: entity.UnitDepartment, FunctionCode: "2.18", PageStart: 474, PageEnd: 520},
		{Name: "Dinas Kebudayaan & Pariwisata", Type: entity.UnitDepartment, FunctionCode: "2.22", PageStart: 521, PageEnd: 555},
		{Name: "Dinas Perpustakaan & Kearsipan", Type: entity.UnitDepartment, FunctionCode: "2.23", PageStart: 556, PageEnd: 600},
		{Name: "Dinas Tenaga Kerja", Type: entity.UnitDepartment, FunctionCode: "2.07", PageStart: 601, PageEnd: 630},
		{Name: "Dinas LHK", Type: entity.UnitDepartment, FunctionCode: "2.11", PageStart: 631, PageEnd: 656},
		{Name: "RSUD dr. Zainoel Abidin", Type: entity.UnitOther, FunctionCode: "1.02", PageStart: 657, PageEnd: 669},
		{Name: "Dinas Pemberdayaan Masyarakat & Gampong", Type: entity.UnitDepartment, FunctionCode: "2.13", PageStart: 670, PageEnd: 700},
		{Name: "Dinas Syariat Islam", Type: entity.UnitDepartment, FunctionCode: "9.01", PageStart: 701, PageEnd: 730},
		{Name: "Dinas Pertanian & Perkebunan", Type: entity.UnitDepartment, FunctionCode: "3.27", PageStart: 731, PageEnd: 760},
		{Name: "Dinas Peternakan", Type: entity.UnitDepartment, FunctionCode: "3.27", PageStart: 761, PageEnd: 780},
		{Name: "Dinas Koperasi & UKM", Type: entity.UnitDepartment, FunctionCode: "2.17", PageStart: 781, PageEnd: 800},
		{Name: "BPKA", Type: entity.UnitAgency, FunctionCode: "4.02", PageStart: 801, PageEnd: 812},
		{Name: "Dinas Perumahan & Permukiman", Type: entity.UnitDepartment, FunctionCode: "1.04", PageStart: 813, PageEnd: 823},
		{Name: "BKD", Type: entity.UnitAgency, FunctionCode: "5.01", PageStart: 824, PageEnd: 860},
		{Name: "BPSDM", Type: entity.UnitAgency, FunctionCode: "5.02", PageStart: 861, PageEnd: 900},
		{Name: "Inspektorat Aceh", Type: entity.UnitSupervisory, FunctionCode: "6.01", PageStart: 901, PageEnd: 920},
		{Name: "Sekretariat MPU", Type: entity.UnitSecretariat, FunctionCode: "9.01", PageStart: 921, PageEnd: 950},
		{Name: "Sekretariat MAA", Type: entity.UnitSecretariat, FunctionCode: "9.01", PageStart: 951, PageEnd: 970},
		{Name: "Sekretariat MPA", Type: entity.UnitSecretariat, FunctionCode: "9.01", PageStart: 971, PageEnd: 980},
		{Name: "Sekretariat BRA", Type: entity.UnitSecretariat, FunctionCode: "9.01", PageStart: 981, PageEnd: 987},
		{Name: "Sekretariat Daerah Aceh", Type: entity.UnitRegionalSecretariat, FunctionCode: "7.01", PageStart: 26, PageEnd: 54},
		{Name: "Dinas Kelautan & Perikanan", Type: entity.UnitDepartment, FunctionCode: "3.25", PageStart: 988, PageEnd: 1000},
		{Name: "Dinas Perindustrian & Perdagangan", Type: entity.UnitDepartment, FunctionCode: "3.30", PageStart: 1001, PageEnd: 1020},
		{Name: "Dinas Pemuda & Olahraga", Type: entity.UnitDepartment, FunctionCode: "2.19", PageStart: 1021, PageEnd: 1040},
		{Name: "Dinas Perhubungan", Type: entity.UnitDepartment, FunctionCode: "2.15", PageStart: 1041, PageEnd: 1055},
		{Name: "Badan Kesbangpol", Type: entity.UnitAgency, FunctionCode: "9.01", PageStart: 1056, PageEnd: 1062},
	}
}
