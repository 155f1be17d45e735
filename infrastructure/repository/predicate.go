package repository

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// buildPredicate maps a browse request onto a conjunction of squirrel
// clauses, one per active filter dimension. An absent or empty dimension
// contributes no clause; an empty conjunction renders as (1=1). The function
// is pure: the same request always yields the same fragment and parameter
// order, and user values only ever travel as bound parameters.
//
// Page and count queries must build their WHERE clause through this single
// function so the matched set can never drift between them.
func buildPredicate(req *domain.SalesQueryRequest) squirrel.And {
	pred := squirrel.And{}

	if search := strings.TrimSpace(req.Search); search != "" {
		pattern := "%" + search + "%"
		pred = append(pred, squirrel.Or{
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"phone_number": pattern},
		})
	}

	if len(req.Filters.CustomerRegion) > 0 {
		pred = append(pred, squirrel.Eq{"customer_region": req.Filters.CustomerRegion})
	}

	if len(req.Filters.Gender) > 0 {
		pred = append(pred, squirrel.Eq{"gender": req.Filters.Gender})
	}

	if req.Filters.AgeMin != nil {
		pred = append(pred, squirrel.GtOrEq{"age": *req.Filters.AgeMin})
	}
	if req.Filters.AgeMax != nil {
		pred = append(pred, squirrel.LtOrEq{"age": *req.Filters.AgeMax})
	}

	if len(req.Filters.ProductCategory) > 0 {
		pred = append(pred, squirrel.Eq{"product_category": req.Filters.ProductCategory})
	}

	// Tags are stored as a comma-joined field, so membership is a substring
	// test. A requested tag that is a substring of a stored tag over-matches
	// ("Sale" also hits "OnSale"); that is the documented behavior of the
	// schema, not something to correct here.
	if len(req.Filters.Tags) > 0 {
		or := squirrel.Or{}
		for _, tag := range req.Filters.Tags {
			or = append(or, squirrel.Like{"tags": "%" + tag + "%"})
		}
		pred = append(pred, or)
	}

	if len(req.Filters.PaymentMethod) > 0 {
		pred = append(pred, squirrel.Eq{"payment_method": req.Filters.PaymentMethod})
	}

	// Dates are ISO YYYY-MM-DD strings, so lexical comparison is calendar
	// comparison. Malformed source dates were stored as NULL and never match
	// a range.
	if req.Filters.DateFrom != nil {
		pred = append(pred, squirrel.GtOrEq{"date": *req.Filters.DateFrom})
	}
	if req.Filters.DateTo != nil {
		pred = append(pred, squirrel.LtOrEq{"date": *req.Filters.DateTo})
	}

	return pred
}
