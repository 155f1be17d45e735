package domain

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type DateRange struct {
	Min *string `json:"min"`
	Max *string `json:"max"`
}

// FilterOptions lists the distinct values currently present in the store for
// each categorical dimension, used to populate the filter UI.
type FilterOptions struct {
	CustomerRegions   []string  `json:"customerRegions"`
	Genders           []string  `json:"genders"`
	ProductCategories []string  `json:"productCategories"`
	Tags              []string  `json:"tags"`
	PaymentMethods    []string  `json:"paymentMethods"`
	AgeRange          AgeRange  `json:"ageRange"`
	DateRange         DateRange `json:"dateRange"`
}

// Statistics are whole-store aggregates. Every field is zero on an empty
// store, never null.
type Statistics struct {
	TotalTransactions int64   `json:"totalTransactions"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalQuantitySold int64   `json:"totalQuantitySold"`
	UniqueCustomers   int64   `json:"uniqueCustomers"`
	UniqueProducts    int64   `json:"uniqueProducts"`
}
