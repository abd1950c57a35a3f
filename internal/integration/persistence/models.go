// Package persistence implements repository interfaces for database operations.
package persistence

import "github.com/expense-tracker/backend/internal/integration/persistence/model"

// Models returns every model to auto-migrate, parents first.
func Models() []interface{} {
	return []interface{}{
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	}
}
