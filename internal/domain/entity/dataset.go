package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceSet identifies the four appendix tables of one load.
type SourceSet struct {
	Ledger            string `json:"ledger"`
	Grants            string `json:"grants"`
	Aid               string `json:"aid"`
	SpecialAllocation string `json:"special_allocation"`
}

// Key is the memoisation identity of a source set.
func (s SourceSet) Key() string {
	return s.Ledger + "|" + s.Grants + "|" + s.Aid + "|" + s.SpecialAllocation
}

// Dataset is the enriched, read-only result of one load cycle.
type Dataset struct {
	LoadID   uuid.UUID `json:"load_id"`
	LoadedAt time.Time `json:"loaded_at"`
	Sources  SourceSet `json:"sources"`

	Ledger            []BudgetLineItem          `json:"ledger"`
	Grants            []GrantRecord             `json:"grants"`
	Aid               []AidRecord               `json:"aid"`
	SpecialAllocation []SpecialAllocationRecord `json:"special_allocation"`
	Units             []OrganizationalUnit      `json:"units"`
}
