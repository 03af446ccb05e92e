// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BillingUnit is the predicate function for billingunit builders.
type BillingUnit func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// ImportTask is the predicate function for importtask builders.
type ImportTask func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)
