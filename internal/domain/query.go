package domain

type SortField string

const (
	SortByDate         SortField = "date"
	SortByQuantity     SortField = "quantity"
	SortByCustomerName SortField = "customerName"
	SortByFinalAmount  SortField = "finalAmount"
	SortByAge          SortField = "age"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SalesFilters holds the independent filter dimensions of a browse request.
// Dimensions are conjoined (AND); values within a multi-select dimension are
// alternatives (OR). An empty slice means the dimension is unconstrained.
// Bounds use pointers so a legitimate zero value stays distinguishable from
// "unset".
type SalesFilters struct {
	CustomerRegion  []string `json:"customerRegion"`
	Gender          []string `json:"gender"`
	AgeMin          *int     `json:"ageMin"`
	AgeMax          *int     `json:"ageMax"`
	ProductCategory []string `json:"productCategory"`
	Tags            []string `json:"tags"`
	PaymentMethod   []string `json:"paymentMethod"`
	DateFrom        *string  `json:"dateFrom"`
	DateTo          *string  `json:"dateTo"`
}

// SalesQueryRequest is the validated browse request handed to the query
// engine. Validation of ranges, enums and date formats happens at the HTTP
// boundary before one of these is built.
type SalesQueryRequest struct {
	Search    string       `json:"search"`
	Filters   SalesFilters `json:"filters"`
	SortBy    SortField    `json:"sortBy"`
	SortOrder SortOrder    `json:"sortOrder"`
	Page      int          `json:"page"`
	PageSize  int          `json:"pageSize"`
}

// NewSalesQueryRequest returns a request with the documented defaults applied.
func NewSalesQueryRequest() *SalesQueryRequest {
	return &SalesQueryRequest{
		SortBy:    SortByDate,
		SortOrder: SortDesc,
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
	}
}

type SortSpec struct {
	SortBy    SortField `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	PageSize        int   `json:"pageSize"`
	TotalRecords    int64 `json:"totalRecords"`
	TotalPages      int64 `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// SalesQueryResult is the page of records plus the pagination metadata
// computed from the count query that shared its predicate.
type SalesQueryResult struct {
	Data       []*SalesRecord `json:"data"`
	Pagination Pagination     `json:"pagination"`
	Filters    SalesFilters   `json:"filters"`
	Search     *string        `json:"search"`
	Sort       SortSpec       `json:"sort"`
}
