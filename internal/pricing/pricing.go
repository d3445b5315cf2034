// Package pricing converts a resolved document category and page count into
// the credit amount a conversion costs, and gates premium processor routing
// on the caller's balance.
package pricing

import (
	"github.com/tabuflow/convert-core/constants"
	"github.com/tabuflow/convert-core/internal/rules"
)

// Quote is one priced conversion. Computed fresh per request; the underlying
// table is process-wide static configuration, so quotes are never cached.
type Quote struct {
	CostPerPage   float64
	TotalRequired float64
	Category      constants.DocumentCategory
}

type Calculator struct {
	table rules.Pricing
}

func NewCalculator(rs *rules.Set) *Calculator {
	if rs == nil {
		rs = rules.Defaults()
	}
	return &Calculator{table: rs.Pricing}
}

// CostPerPage resolves the per-page rate. Precedence: exact category tier
// match, then the heavy_scanned tier for scanned documents, then the default.
// A missing tier never errors; pricing always terminates with a value.
func (c *Calculator) CostPerPage(cat constants.DocumentCategory, isScanned bool) float64 {
	if rate, ok := c.table.PerPage[string(cat)]; ok {
		return rate
	}
	if isScanned {
		if rate, ok := c.table.PerPage["heavy_scanned"]; ok {
			return rate
		}
	}
	return c.table.DefaultPerPage
}

// TotalCredits is a simple linear model: page-level granularity already
// reflects processing cost, so there is no volume discount.
func (c *Calculator) TotalCredits(pages int, costPerPage float64) float64 {
	if pages < 0 {
		pages = 0
	}
	return float64(pages) * costPerPage
}

// HasPremiumAccess is the single gate between free-tier and premium
// processor routing.
func (c *Calculator) HasPremiumAccess(currentCredits float64) bool {
	return currentCredits >= c.table.PremiumThreshold
}

// QuoteFor prices one document.
func (c *Calculator) QuoteFor(cat constants.DocumentCategory, isScanned bool, pages int) Quote {
	rate := c.CostPerPage(cat, isScanned)
	return Quote{
		CostPerPage:   rate,
		TotalRequired: c.TotalCredits(pages, rate),
		Category:      cat,
	}
}
