package model

// CategoriesTable is the table backing Category.
const CategoriesTable = "common_categories"

// Category is a single expense category. Global categories have no owner.
type Category struct {
	ID     int64  `db:"id" json:"id"`
	UserID *int64 `db:"user_id" json:"user_id,omitempty"`
	Name   string `db:"name" json:"name"`
}

func (Category) TableName() string { return CategoriesTable }

func (c Category) PrimaryKey() int64 { return c.ID }

// Columns lists the mutable columns in bind order; Values must match it.
func (Category) Columns() []string { return []string{"user_id", "name"} }

func (c Category) Values() []any { return []any{c.UserID, c.Name} }
