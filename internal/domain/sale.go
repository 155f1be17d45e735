package domain

import "time"

// SalesRecord is one transaction line as ingested from the retail dataset.
// Records are append-only: they are written by the bulk loader and never
// updated in place.
type SalesRecord struct {
	ID                 int64   `json:"id"`
	CustomerID         string  `json:"customerId"`
	CustomerName       string  `json:"customerName"`
	PhoneNumber        string  `json:"phoneNumber"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	CustomerRegion     string  `json:"customerRegion"`
	CustomerType       string  `json:"customerType"`
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	Brand              string  `json:"brand"`
	ProductCategory    string  `json:"productCategory"`
	Tags               string  `json:"tags"`
	Quantity           int     `json:"quantity"`
	PricePerUnit       float64 `json:"pricePerUnit"`
	DiscountPercentage float64 `json:"discountPercentage"`
	TotalAmount        float64 `json:"totalAmount"`
	FinalAmount        float64 `json:"finalAmount"`
	// Date is the calendar date of the transaction as ISO YYYY-MM-DD.
	// Nil when the source value was missing or unparseable.
	Date          *string   `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	OrderStatus   string    `json:"orderStatus"`
	DeliveryType  string    `json:"deliveryType"`
	StoreID       string    `json:"storeId"`
	StoreLocation string    `json:"storeLocation"`
	SalespersonID string    `json:"salespersonId"`
	EmployeeName  string    `json:"employeeName"`
	CreatedAt     time.Time `json:"createdAt"`
}
