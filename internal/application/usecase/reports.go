package usecase

import (
	"sort"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/domain/aggregate"
	"github.com/diillson/apba-dashboard-go/internal/domain/classifier"
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// MinQueryLength is the shortest accepted global search query.
const MinQueryLength = 2

const (
	// Unidades de maior gasto na composição percentual por categoria
	shareUnits = 10
	// Pares categoria/descrição exibidos na proporção de gasto da unidade
	breakdownItems = 30
	// Runas da descrição usadas como rótulo na proporção de gasto
	breakdownLabelRunes = 40
)

// ReportOptions tunes the report views.
type ReportOptions struct {
	Level int
	Top   int
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.Level <= 0 {
		o.Level = DefaultDetailLevel
	}
	if o.Top <= 0 {
		o.Top = DefaultTopN
	}
	return o
}

// Extratores de chave e medida compartilhados pelos relatórios
func ledgerAmount(b entity.BudgetLineItem) decimal.NullDecimal { return b.Amount }
func ledgerUnit(b entity.BudgetLineItem) string { return b.Unit }
func ledgerCategory(b entity.BudgetLineItem) string { return b.Category }
func ledgerArea(b entity.BudgetLineItem) string { return b.FunctionArea }
func ledgerIndicator(b entity.BudgetLineItem) string { return b.Indicator }
func ledgerShortDescription(b entity.BudgetLineItem) string {
	if r := []rune(b.Description); len(r) > breakdownLabelRunes {
		return string(r[:breakdownLabelRunes])
	}
	return b.Description
}
func grantAmount(g entity.GrantRecord) decimal.NullDecimal { return g.Amount }
func grantType(g entity.GrantRecord) string { return string(g.GrantType) }
func aidAmount(a entity.AidRecord) decimal.NullDecimal { return a.Amount }
func aidRecipient(a entity.AidRecord) string { return a.RecipientName }
func aidType(a entity.AidRecord) string { return string(a.AidType) }
func otsusAmount(s entity.SpecialAllocationRecord) decimal.NullDecimal { return s.Amount }
func otsusSector(s entity.SpecialAllocationRecord) string { return s.Sector }

// detailLines returns ledger lines at the detail level.
func detailLines(ds *entity.Dataset, level int) []entity.BudgetLineItem {
	var out []entity.BudgetLineItem
	for _, item := range ds.Ledger {
		if item.AtLevel(level) {
			out = append(out, item)
		}
	}
	return out
}

func expenditureLines(ds *entity.Dataset, level int) []entity.BudgetLineItem {
	var out []entity.BudgetLineItem
	for _, item := range detailLines(ds, level) {
		if classifier.IsExpenditure(item.AccountCode) {
			out = append(out, item)
		}
	}
	return out
}

// Summary builds the executive summary.
func (uc *DashboardUseCase) Summary(ds *entity.Dataset, opts ReportOptions) entity.ExecutiveSummary {
	opts = opts.withDefaults()
	lines := detailLines(ds, opts.Level)

	var revenueLines, spending []entity.BudgetLineItem
	for _, item := range lines {
		switch {
		case classifier.IsRevenue(item.AccountCode):
			revenueLines = append(revenueLines, item)
		case classifier.IsExpenditure(item.AccountCode):
			spending = append(spending, item)
		}
	}

	revenue, _ := aggregate.Total(revenueLines, ledgerAmount)
	expenditure, _ := aggregate.Total(spending, ledgerAmount)
	otsus, _ := aggregate.Total(ds.SpecialAllocation, otsusAmount)
	surplus := revenue.Sub(expenditure)

	var surplusPct *float64
	if !expenditure.IsZero() {
		pct := surplus.Div(expenditure).Mul(decimal.NewFromInt(100)).InexactFloat64()
		surplusPct = &pct
	}

	composition := aggregate.Table("Expenditure Composition", spending,
		[]string{"Category"}, []aggregate.Key[entity.BudgetLineItem]{ledgerCategory},
		aggregate.Sum("Amount", ledgerAmount))
	composition.Rows = aggregate.SortDesc(aggregate.NonZero(composition.Rows))

	topUnits := aggregate.Table("Top Units by Expenditure", spending,
		[]string{"Unit"}, []aggregate.Key[entity.BudgetLineItem]{ledgerUnit},
		aggregate.Sum("Total", ledgerAmount))
	topUnits.Rows = aggregate.Top(aggregate.SortDesc(topUnits.Rows), opts.Top)

	areaUnits := aggregate.Table("Allocation by Government Function", spending,
		[]string{"Function Area", "Unit"}, []aggregate.Key[entity.BudgetLineItem]{ledgerArea, ledgerUnit},
		aggregate.Sum("Budget", ledgerAmount))
	areaUnits.Rows = aggregate.NonZero(areaUnits.Rows)

	return entity.ExecutiveSummary{
		Revenue:            revenue,
		Expenditure:        expenditure,
		Surplus:            surplus,
		SurplusPercent:     surplusPct,
		SpecialAllocation:  otsus,
		Composition:        composition,
		TopUnits:           topUnits,
		AreaUnitAllocation: areaUnits,
	}
}

// Units lists the units that own at least one detail expenditure line,
// sorted by name.
func (uc *DashboardUseCase) Units(ds *entity.Dataset, opts ReportOptions) []string {
	opts = opts.withDefaults()
	seen := map[string]struct{}{}
	var names []string
	for _, item := range expenditureLines(ds, opts.Level) {
		if _, ok := seen[item.Unit]; ok {
			continue
		}
		seen[item.Unit] = struct{}{}
		names = append(names, item.Unit)
	}
	sort.Strings(names)
	return names
}

// ExploreUnit details the detail-level expenditure of one unit. query,
// when set, filters the listing by code, description or indicator.
func (uc *DashboardUseCase) ExploreUnit(ds *entity.Dataset, unit, query string, opts ReportOptions) (entity.UnitExploration, error) {
	opts = opts.withDefaults()

	var items []entity.BudgetLineItem
	for _, item := range expenditureLines(ds, opts.Level) {
		if item.Unit == unit {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return entity.UnitExploration{}, types.ErrUnitNotFound
	}

	total, _ := aggregate.Total(items, ledgerAmount)
	categories := aggregate.Table("Category Breakdown", items,
		[]string{"Category"}, []aggregate.Key[entity.BudgetLineItem]{ledgerCategory},
		aggregate.Sum("Amount", ledgerAmount))
	categories.Rows = aggregate.SortDesc(categories.Rows)

	breakdown := aggregate.Table("Spending Proportion", items,
		[]string{"Category", "Description"}, []aggregate.Key[entity.BudgetLineItem]{ledgerCategory, ledgerShortDescription},
		aggregate.Sum("Amount", ledgerAmount))
	breakdown.Rows = aggregate.Top(aggregate.SortDesc(aggregate.Positive(breakdown.Rows)), breakdownItems)

	listing := items
	if query != "" {
		listing = filterLedger(items, query)
	}
	listing = sortLedgerDesc(listing)

	return entity.UnitExploration{
		Unit:       unit,
		Total:      total,
		ItemCount:  len(items),
		Categories: categories,
		Breakdown:  breakdown,
		Items:      listing,
	}, nil
}

// SpecialAllocation summarises the Otsus appendix.
func (uc *DashboardUseCase) SpecialAllocation(ds *entity.Dataset) entity.SpecialAllocationReport {
	total, _ := aggregate.Total(ds.SpecialAllocation, otsusAmount)

	var programs []entity.SpecialAllocationRecord
	var positive []entity.SpecialAllocationRecord
	for _, rec := range ds.SpecialAllocation {
		if rec.ProgramLevel {
			programs = append(programs, rec)
		}
		if rec.Amount.Valid && rec.Amount.Decimal.IsPositive() {
			positive = append(positive, rec)
		}
	}

	sectors := aggregate.Table("Distribution by Sector", programs,
		[]string{"Sector"}, []aggregate.Key[entity.SpecialAllocationRecord]{otsusSector},
		aggregate.Sum("Allocation", otsusAmount))
	sectors.Rows = aggregate.SortDesc(aggregate.NonZero(sectors.Rows))

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Amount.Decimal.GreaterThan(positive[j].Amount.Decimal)
	})

	return entity.SpecialAllocationReport{
		Total:   total,
		Sectors: sectors,
		Items:   positive,
	}
}

// Grants summarises the grants appendix. grantTypes restricts the listing
// (empty means every type); query filters it by recipient or address.
func (uc *DashboardUseCase) Grants(ds *entity.Dataset, grantTypes []string, query string, opts ReportOptions) entity.GrantReport {
	opts = opts.withDefaults()

	var valid []entity.GrantRecord
	for _, g := range ds.Grants {
		if entity.HasSequence(g.SeqNo) {
			valid = append(valid, g)
		}
	}

	var money, goods []entity.GrantRecord
	for _, g := range valid {
		switch g.GrantType {
		case entity.GrantMoney:
			money = append(money, g)
		case entity.GrantGoods:
			goods = append(goods, g)
		}
	}
	moneyTotal, _ := aggregate.Total(money, grantAmount)
	goodsTotal, _ := aggregate.Total(goods, grantAmount)

	byType := aggregate.Table("Grants by Type", valid,
		[]string{"Type"}, []aggregate.Key[entity.GrantRecord]{grantType},
		aggregate.Sum("Total", grantAmount))

	ranked := sortGrantsDesc(append([]entity.GrantRecord(nil), valid...))
	top := ranked
	if len(top) > opts.Top {
		top = top[:opts.Top]
	}

	allowed := map[string]bool{}
	for _, t := range grantTypes {
		allowed[strings.ToUpper(strings.TrimSpace(t))] = true
	}
	q := strings.ToLower(query)
	var listing []entity.GrantRecord
	for _, g := range ranked {
		if len(allowed) > 0 && !allowed[string(g.GrantType)] {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(g.RecipientName), q) &&
			!strings.Contains(strings.ToLower(g.RecipientAddress), q) {
			continue
		}
		listing = append(listing, g)
	}

	return entity.GrantReport{
		MoneyTotal:     moneyTotal,
		GoodsTotal:     goodsTotal,
		RecipientCount: len(valid),
		ByType:         byType,
		TopRecipients:  top,
		Items:          listing,
	}
}

// Aid summarises the inter-government-aid appendix.
func (uc *DashboardUseCase) Aid(ds *entity.Dataset) entity.AidReport {
	var valid, general, specific []entity.AidRecord
	for _, a := range ds.Aid {
		if !entity.HasSequence(a.SeqNo) {
			continue
		}
		valid = append(valid, a)
		switch a.AidType {
		case entity.AidGeneral:
			general = append(general, a)
		case entity.AidSpecific:
			specific = append(specific, a)
		}
	}
	generalTotal, _ := aggregate.Total(general, aidAmount)
	specificTotal, _ := aggregate.Total(specific, aidAmount)

	byRecipient := aggregate.Table("Aid by Regency/City", valid,
		[]string{"Recipient", "Type"}, []aggregate.Key[entity.AidRecord]{aidRecipient, aidType},
		aggregate.Sum("Amount", aidAmount))
	byRecipient.Rows = aggregate.SortDesc(aggregate.NonZero(byRecipient.Rows))

	return entity.AidReport{
		GeneralTotal:  generalTotal,
		SpecificTotal: specificTotal,
		ByRecipient:   byRecipient,
	}
}

// Compare cross-tabulates detail-level expenditure by unit and category.
func (uc *DashboardUseCase) Compare(ds *entity.Dataset, opts ReportOptions) entity.ComparativeReport {
	opts = opts.withDefaults()
	spending := expenditureLines(ds, opts.Level)

	sums := aggregate.Aggregate(spending,
		[]aggregate.Key[entity.BudgetLineItem]{ledgerUnit, ledgerCategory},
		aggregate.Sum("Amount", ledgerAmount))
	matrix := entity.AggregateTable{
		Title:      "Expenditure by Unit and Category",
		Dimensions: []string{"Unit", "Category"},
		Measure:    "Amount",
		Rows:       fillMatrix(sums),
	}

	totals := aggregate.Aggregate(spending, []aggregate.Key[entity.BudgetLineItem]{ledgerUnit}, aggregate.Sum("Total", ledgerAmount))
	items := aggregate.Aggregate(spending, []aggregate.Key[entity.BudgetLineItem]{ledgerUnit}, aggregate.Count("Items", ledgerAmount))
	indicators := aggregate.Aggregate(spending, []aggregate.Key[entity.BudgetLineItem]{ledgerUnit}, aggregate.DistinctCount("Indicators", ledgerIndicator))

	profiles := make([]entity.UnitProfile, 0, len(indicators))
	totalBy := rowIndex(totals)
	itemsBy := rowIndex(items)
	for _, row := range indicators {
		unit := row.Key(0)
		profiles = append(profiles, entity.UnitProfile{
			Unit:       unit,
			Total:      totalBy[unit],
			Items:      int(itemsBy[unit].IntPart()),
			Indicators: int(row.Value.IntPart()),
		})
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Total.GreaterThan(profiles[j].Total)
	})

	top := aggregate.Top(aggregate.SortDesc(totals), shareUnits)
	var shares []entity.CategoryShare
	for _, t := range top {
		unit := t.Key(0)
		for _, row := range sums {
			if row.Key(0) != unit || t.Value.IsZero() {
				continue
			}
			pct := row.Value.Div(t.Value).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
			shares = append(shares, entity.CategoryShare{Unit: unit, Category: row.Key(1), Percent: pct})
		}
	}

	return entity.ComparativeReport{Matrix: matrix, Profiles: profiles, Shares: shares}
}

// Search finds ledger lines at any level whose code, description or
// indicator contains query, largest amount first.
func (uc *DashboardUseCase) Search(ds *entity.Dataset, query string) ([]entity.BudgetLineItem, error) {
	if len([]rune(strings.TrimSpace(query))) < MinQueryLength {
		return nil, types.ErrQueryTooShort
	}
	return sortLedgerDesc(filterLedger(ds.Ledger, query)), nil
}

func filterLedger(items []entity.BudgetLineItem, query string) []entity.BudgetLineItem {
	q := strings.ToLower(query)
	var out []entity.BudgetLineItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.AccountCode), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Indicator), q) {
			out = append(out, item)
		}
	}
	return out
}

// sortLedgerDesc ordena por valor decrescente, com valores nulos no fim.
func sortLedgerDesc(items []entity.BudgetLineItem) []entity.BudgetLineItem {
	out := append([]entity.BudgetLineItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return nullGreater(out[i].Amount, out[j].Amount)
	})
	return out
}

func sortGrantsDesc(records []entity.GrantRecord) []entity.GrantRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return nullGreater(records[i].Amount, records[j].Amount)
	})
	return records
}

func nullGreater(a, b decimal.NullDecimal) bool {
	if !a.Valid {
		return false
	}
	if !b.Valid {
		return true
	}
	return a.Decimal.GreaterThan(b.Decimal)
}

func rowIndex(rows []entity.AggregateRow) map[string]decimal.Decimal {
	idx := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		idx[r.Key(0)] = r.Value
	}
	return idx
}

// fillMatrix expands two-key rows into every observed (row, column)
// combination, filling absent cells with zero.
func fillMatrix(rows []entity.AggregateRow) []entity.AggregateRow {
	var rowKeys, colKeys []string
	seenRow, seenCol := map[string]bool{}, map[string]bool{}
	cells := map[[2]string]decimal.Decimal{}
	for _, r := range rows {
		rk, ck := r.Key(0), r.Key(1)
		if !seenRow[rk] {
			seenRow[rk] = true
			rowKeys = append(rowKeys, rk)
		}
		if !seenCol[ck] {
			seenCol[ck] = true
			colKeys = append(colKeys, ck)
		}
		cells[[2]string{rk, ck}] = r.Value
	}
	sort.Strings(rowKeys)
	sort.Strings(colKeys)

	out := make([]entity.AggregateRow, 0, len(rowKeys)*len(colKeys))
	for _, rk := range rowKeys {
		for _, ck := range colKeys {
			out = append(out, entity.AggregateRow{Keys: []string{rk, ck}, Value: cells[[2]string{rk, ck}]})
		}
	}
	return out
}
