package repository

import "context"

// The sales table is append-mostly: bulk loads write it, everything else
// reads. Dates are kept as ISO YYYY-MM-DD text (lexical order == calendar
// order) and are NULL when the source value was unparseable. Each
// filterable/sortable column carries its own index so predicate evaluation
// stays sub-linear at the 10^5-10^6 row scale the dataset targets.
const createSalesTable = `
CREATE TABLE IF NOT EXISTS sales (
	id BIGSERIAL PRIMARY KEY,
	customer_id TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	phone_number TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	age INTEGER NOT NULL DEFAULT 0,
	customer_region TEXT NOT NULL DEFAULT '',
	customer_type TEXT NOT NULL DEFAULT '',
	product_id TEXT NOT NULL,
	product_name TEXT NOT NULL DEFAULT '',
	brand TEXT NOT NULL DEFAULT '',
	product_category TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	quantity INTEGER NOT NULL DEFAULT 0,
	price_per_unit NUMERIC(12,2) NOT NULL DEFAULT 0,
	discount_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
	total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
	final_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
	date TEXT,
	payment_method TEXT NOT NULL DEFAULT '',
	order_status TEXT NOT NULL DEFAULT '',
	delivery_type TEXT NOT NULL DEFAULT '',
	store_id TEXT NOT NULL DEFAULT '',
	store_location TEXT NOT NULL DEFAULT '',
	salesperson_id TEXT NOT NULL DEFAULT '',
	employee_name TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var createSalesIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_name_lower ON sales (LOWER(customer_name))`,
	`CREATE INDEX IF NOT EXISTS idx_sales_phone_number ON sales (phone_number)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_region ON sales (customer_region)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_gender ON sales (gender)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_age ON sales (age)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_category ON sales (product_category)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_payment_method ON sales (payment_method)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_final_amount ON sales (final_amount)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_name_phone ON sales (customer_name, phone_number)`,
}

// EnsureSchema creates the sales table and its indexes when missing. It must
// run before any other repository operation.
func (r *salesRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, createSalesTable); err != nil {
		return classify(err, "creating sales table")
	}

	for _, stmt := range createSalesIndexes {
		if _, err := r.conn.Exec(ctx, stmt); err != nil {
			return classify(err, "creating sales index")
		}
	}

	return nil
}
