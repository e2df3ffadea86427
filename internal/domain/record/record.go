package record

import (
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/shopspring/decimal"
)

// Base carries the store-assigned identity and audit timestamps shared by
// every entity. Entities embed it so the JSON fields are flattened.
type Base struct {
	ID         int64     `json:"id"`
	CreateDate time.Time `json:"createdate"`
	UpdateDate time.Time `json:"updatedate"`
}

// Record exposes the embedded Base for the store.
func (b *Base) Record() *Base {
	return b
}

// Model is satisfied by a pointer to any struct embedding Base.
type Model[T any] interface {
	*T
	Record() *Base
}

// ActiveFlag is the Y/N business flag used by employees, candidates,
// postings, stages and structures. It is not a deletion marker.
type ActiveFlag string

const (
	Active   ActiveFlag = "Y"
	Inactive ActiveFlag = "N"
)

// ClonePtr returns a pointer to a copy of *p, or nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// FlagOrActive treats an omitted flag as Y.
func FlagOrActive(s string) ActiveFlag {
	if s == "" {
		return Active
	}
	return ActiveFlag(s)
}

const (
	DateLayout      = query.DateLayout
	TimestampLayout = time.RFC3339
)

// Allocation is an allotted quantity and its consumption. Balance is
// always derived and never taken from callers.
type Allocation struct {
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	Used           decimal.Decimal `json:"used"`
	Balance        decimal.Decimal `json:"balance"`
}

func (a *Allocation) Recompute() {
	a.Balance = a.TotalAllocated.Sub(a.Used)
}
