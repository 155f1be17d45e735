package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const salesTable = "sales"

// salesColumns is the select list in scan order.
const salesColumns = `id, customer_id, customer_name, phone_number, gender, age, customer_region, customer_type,
	product_id, product_name, brand, product_category, tags, quantity, price_per_unit,
	discount_percentage, total_amount, final_amount, date, payment_method, order_status,
	delivery_type, store_id, store_location, salesperson_id, employee_name, created_at`

var insertColumns = []string{
	"customer_id", "customer_name", "phone_number", "gender", "age", "customer_region", "customer_type",
	"product_id", "product_name", "brand", "product_category", "tags", "quantity", "price_per_unit",
	"discount_percentage", "total_amount", "final_amount", "date", "payment_method", "order_status",
	"delivery_type", "store_id", "store_location", "salesperson_id", "employee_name",
}

// sortColumns whitelists the sortable fields. customerName sorts
// case-insensitively; everything else sorts on the raw stored value.
var sortColumns = map[domain.SortField]string{
	domain.SortByDate:         "date",
	domain.SortByQuantity:     "quantity",
	domain.SortByCustomerName: "LOWER(customer_name)",
	domain.SortByFinalAmount:  "final_amount",
	domain.SortByAge:          "age",
}

// facetColumns whitelists the categorical dimensions exposed as facets.
var facetColumns = map[string]string{
	"customerRegion":  "customer_region",
	"gender":          "gender",
	"productCategory": "product_category",
	"paymentMethod":   "payment_method",
}

type SalesRepository interface {
	EnsureSchema(ctx context.Context) error
	InsertBatch(ctx context.Context, records []*domain.SalesRecord) error
	Clear(ctx context.Context) error
	RecordCount(ctx context.Context) (int64, error)
	QueryPage(ctx context.Context, req *domain.SalesQueryRequest) ([]*domain.SalesRecord, error)
	CountMatches(ctx context.Context, req *domain.SalesQueryRequest) (int64, error)
	DistinctValues(ctx context.Context, dimension string) ([]string, error)
	AgeRange(ctx context.Context) (*domain.AgeRange, error)
	DateRange(ctx context.Context) (*domain.DateRange, error)
	TagVocabulary(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// buildPageQuery renders the page-fetch statement: shared predicate, then
// sort, then the offset/limit window.
func buildPageQuery(req *domain.SalesQueryRequest) (string, []interface{}, error) {
	column, ok := sortColumns[req.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort field: %q", req.SortBy)
	}

	direction := "DESC"
	if req.SortOrder == domain.SortAsc {
		direction = "ASC"
	}

	offset := uint64(req.Page-1) * uint64(req.PageSize)

	return squirrel.
		Select(salesColumns).
		From(salesTable).
		Where(buildPredicate(req)).
		OrderBy(fmt.Sprintf("%s %s", column, direction), "id ASC").
		Limit(uint64(req.PageSize)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildCountQuery renders the count statement over the identical predicate.
func buildCountQuery(req *domain.SalesQueryRequest) (string, []interface{}, error) {
	return squirrel.
		Select("COUNT(*)").
		From(salesTable).
		Where(buildPredicate(req)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRepository) QueryPage(ctx context.Context, req *domain.SalesQueryRequest) ([]*domain.SalesRecord, error) {
	query, args, err := buildPageQuery(req)
	if err != nil {
		return nil, errors.Wrap(err, "building page query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "querying sales page")
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0, req.PageSize)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, classify(err, "scanning sales record")
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, classify(err, "iterating sales rows")
	}

	return records, nil
}

func (r *salesRepository) CountMatches(ctx context.Context, req *domain.SalesQueryRequest) (int64, error) {
	query, args, err := buildCountQuery(req)
	if err != nil {
		return 0, errors.Wrap(err, "building count query")
	}

	var count int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, classify(err, "counting sales matches")
	}

	return count, nil
}

func (r *salesRepository) RecordCount(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building record count query")
	}

	var count int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, classify(err, "counting sales records")
	}

	return count, nil
}

// InsertBatch appends one batch of records inside a single transaction so a
// crash mid-load leaves only whole batches behind.
func (r *salesRepository) InsertBatch(ctx context.Context, records []*domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(salesTable).
		Columns(insertColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range records {
		builder = builder.Values(
			rec.CustomerID, rec.CustomerName, rec.PhoneNumber, rec.Gender, rec.Age,
			rec.CustomerRegion, rec.CustomerType, rec.ProductID, rec.ProductName,
			rec.Brand, rec.ProductCategory, rec.Tags, rec.Quantity, rec.PricePerUnit,
			rec.DiscountPercentage, rec.TotalAmount, rec.FinalAmount, rec.Date,
			rec.PaymentMethod, rec.OrderStatus, rec.DeliveryType, rec.StoreID,
			rec.StoreLocation, rec.SalespersonID, rec.EmployeeName,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return errors.Wrap(err, "building batch insert")
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return classify(err, "inserting sales batch")
	}

	return nil
}

func (r *salesRepository) Clear(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, "TRUNCATE TABLE "+salesTable+" RESTART IDENTITY"); err != nil {
		return classify(err, "clearing sales table")
	}
	return nil
}

func (r *salesRepository) DistinctValues(ctx context.Context, dimension string) ([]string, error) {
	column, ok := facetColumns[dimension]
	if !ok {
		return nil, fmt.Errorf("unknown facet dimension: %q", dimension)
	}

	query, args, err := squirrel.
		Select("DISTINCT " + column).
		From(salesTable).
		Where(squirrel.NotEq{column: nil}).
		Where(squirrel.NotEq{column: ""}).
		OrderBy(column).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building distinct values query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "querying distinct "+dimension)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, classify(err, "scanning distinct "+dimension)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, classify(err, "iterating distinct "+dimension)
	}

	return values, nil
}

func (r *salesRepository) AgeRange(ctx context.Context) (*domain.AgeRange, error) {
	query, args, err := squirrel.
		Select("COALESCE(MIN(age), 0)", "COALESCE(MAX(age), 0)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building age range query")
	}

	ageRange := &domain.AgeRange{}
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&ageRange.Min, &ageRange.Max); err != nil {
		return nil, classify(err, "querying age range")
	}

	return ageRange, nil
}

func (r *salesRepository) DateRange(ctx context.Context) (*domain.DateRange, error) {
	query, args, err := squirrel.
		Select("MIN(date)", "MAX(date)").
		From(salesTable).
		Where(squirrel.NotEq{"date": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building date range query")
	}

	var min, max sql.NullString
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&min, &max); err != nil {
		return nil, classify(err, "querying date range")
	}

	dateRange := &domain.DateRange{}
	if min.Valid {
		dateRange.Min = &min.String
	}
	if max.Valid {
		dateRange.Max = &max.String
	}

	return dateRange, nil
}

// TagVocabulary splits every stored tags field on commas and returns the
// deduplicated, sorted vocabulary. This is a full scan over distinct tags
// values; the faceting cache keeps it off the hot path.
func (r *salesRepository) TagVocabulary(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT tags").
		From(salesTable).
		Where(squirrel.NotEq{"tags": nil}).
		Where(squirrel.NotEq{"tags": ""}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building tag vocabulary query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "querying tag vocabulary")
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, classify(err, "scanning tags field")
		}
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, classify(err, "iterating tag rows")
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags, nil
}

func (r *salesRepository) Statistics(ctx context.Context) (*domain.Statistics, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(final_amount), 0)",
			"COALESCE(AVG(final_amount), 0)",
			"COALESCE(SUM(quantity), 0)",
			"COUNT(DISTINCT customer_id)",
			"COUNT(DISTINCT product_id)",
		).
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building statistics query")
	}

	stats := &domain.Statistics{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&stats.TotalTransactions,
		&stats.TotalRevenue,
		&stats.AverageOrderValue,
		&stats.TotalQuantitySold,
		&stats.UniqueCustomers,
		&stats.UniqueProducts,
	)
	if err != nil {
		return nil, classify(err, "querying statistics")
	}

	return stats, nil
}

func scanRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var date sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.CustomerID,
		&record.CustomerName,
		&record.PhoneNumber,
		&record.Gender,
		&record.Age,
		&record.CustomerRegion,
		&record.CustomerType,
		&record.ProductID,
		&record.ProductName,
		&record.Brand,
		&record.ProductCategory,
		&record.Tags,
		&record.Quantity,
		&record.PricePerUnit,
		&record.DiscountPercentage,
		&record.TotalAmount,
		&record.FinalAmount,
		&date,
		&record.PaymentMethod,
		&record.OrderStatus,
		&record.DeliveryType,
		&record.StoreID,
		&record.StoreLocation,
		&record.SalespersonID,
		&record.EmployeeName,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		record.Date = &date.String
	}

	return record, nil
}
