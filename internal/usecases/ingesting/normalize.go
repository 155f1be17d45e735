package ingesting

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// fieldMapping translates the dataset's human-readable CSV headers to
// record fields.
var fieldMapping = map[string]string{
	"Customer ID":         "customerId",
	"Customer Name":       "customerName",
	"Phone Number":        "phoneNumber",
	"Gender":              "gender",
	"Age":                 "age",
	"Customer Region":     "customerRegion",
	"Customer Type":       "customerType",
	"Product ID":          "productId",
	"Product Name":        "productName",
	"Brand":               "brand",
	"Product Category":    "productCategory",
	"Tags":                "tags",
	"Quantity":            "quantity",
	"Price per Unit":      "pricePerUnit",
	"Discount Percentage": "discountPercentage",
	"Total Amount":        "totalAmount",
	"Final Amount":        "finalAmount",
	"Date":                "date",
	"Payment Method":      "paymentMethod",
	"Order Status":        "orderStatus",
	"Delivery Type":       "deliveryType",
	"Store ID":            "storeId",
	"Store Location":      "storeLocation",
	"Salesperson ID":      "salespersonId",
	"Employee Name":       "employeeName",
}

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
}

// headerIndex maps normalized field names to their CSV column position.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if field, ok := fieldMapping[strings.TrimSpace(name)]; ok {
			columns[field] = i
		}
	}
	return columns
}

// normalizeRow coerces one CSV row into a SalesRecord: strings trimmed,
// numerics parsed with a zero default, the date parsed or stored as nil so a
// malformed value is never compared as a string later.
func normalizeRow(columns map[string]int, row []string) (*domain.SalesRecord, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	customerID := field("customerId")
	productID := field("productId")
	if customerID == "" || productID == "" {
		return nil, errors.New("row missing customer or product identifier")
	}

	record := &domain.SalesRecord{
		CustomerID:         customerID,
		CustomerName:       field("customerName"),
		PhoneNumber:        field("phoneNumber"),
		Gender:             field("gender"),
		Age:                parseInt(field("age")),
		CustomerRegion:     field("customerRegion"),
		CustomerType:       field("customerType"),
		ProductID:          productID,
		ProductName:        field("productName"),
		Brand:              field("brand"),
		ProductCategory:    field("productCategory"),
		Tags:               field("tags"),
		Quantity:           parseInt(field("quantity")),
		PricePerUnit:       parseFloat(field("pricePerUnit")),
		DiscountPercentage: parseFloat(field("discountPercentage")),
		TotalAmount:        parseFloat(field("totalAmount")),
		FinalAmount:        parseFloat(field("finalAmount")),
		Date:               parseDate(field("date")),
		PaymentMethod:      field("paymentMethod"),
		OrderStatus:        field("orderStatus"),
		DeliveryType:       field("deliveryType"),
		StoreID:            field("storeId"),
		StoreLocation:      field("storeLocation"),
		SalespersonID:      field("salespersonId"),
		EmployeeName:       field("employeeName"),
	}

	return record, nil
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(value string) int {
	return int(parseFloat(value))
}

// parseDate returns the value normalized to ISO YYYY-MM-DD, or nil when it
// cannot be read as a calendar date.
func parseDate(value string) *string {
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			normalized := parsed.Format(time.DateOnly)
			return &normalized
		}
	}

	return nil
}
