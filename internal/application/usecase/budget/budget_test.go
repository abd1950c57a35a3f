package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

type budgetKey struct {
	categoryID string
	month      string
}

type fakeBudgetRepository struct {
	budgets  map[budgetKey]*entity.Budget
	calls    int
	failWith error
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{budgets: make(map[budgetKey]*entity.Budget)}
}

func (r *fakeBudgetRepository) Upsert(_ context.Context, b *entity.Budget) (*entity.Budget, error) {
	r.calls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	key := budgetKey{categoryID: b.CategoryID, month: b.Month.String()}
	if existing, ok := r.budgets[key]; ok {
		existing.Amount = b.Amount
		return existing, nil
	}
	r.budgets[key] = b
	return b, nil
}

func (r *fakeBudgetRepository) FindByMonth(_ context.Context, month valueobject.Month) ([]*entity.Budget, error) {
	r.calls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Budget
	for key, b := range r.budgets {
		if key.month == month.String() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCategoryRepository struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepository) FindAll(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepository) ExistsByName(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func budgetErrorCode(t *testing.T, err error) domainerror.BudgetErrorCode {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError, got %v", err)
	}
	return budgetErr.Code
}

func TestUpsertBudgetUseCase_Validation(t *testing.T) {
	food, _ := entity.NewCategory("Food", "#f00")

	tests := []struct {
		name         string
		input        UpsertBudgetInput
		expectedCode domainerror.BudgetErrorCode
	}{
		{
			name:         "missing month",
			input:        UpsertBudgetInput{CategoryID: food.ID, Amount: "30"},
			expectedCode: domainerror.ErrCodeMissingBudgetFields,
		},
		{
			name:         "malformed category id",
			input:        UpsertBudgetInput{CategoryID: "Food", Amount: "30", Month: "2024-01"},
			expectedCode: domainerror.ErrCodeInvalidBudgetCategory,
		},
		{
			name:         "non-numeric amount",
			input:        UpsertBudgetInput{CategoryID: food.ID, Amount: "lots", Month: "2024-01"},
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "negative amount",
			input:        UpsertBudgetInput{CategoryID: food.ID, Amount: "-5", Month: "2024-01"},
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "sub-cent amount",
			input:        UpsertBudgetInput{CategoryID: food.ID, Amount: "0.125", Month: "2024-01"},
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "amount too large to store",
			input:        UpsertBudgetInput{CategoryID: food.ID, Amount: "10000000000000", Month: "2024-01"},
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "bad month",
			input:        UpsertBudgetInput{CategoryID: food.ID, Amount: "30", Month: "2024-13"},
			expectedCode: domainerror.ErrCodeInvalidBudgetMonth,
		},
		{
			name:         "unknown category",
			input:        UpsertBudgetInput{CategoryID: "0123456789abcdef01234567", Amount: "30", Month: "2024-01"},
			expectedCode: domainerror.ErrCodeBudgetCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets := newFakeBudgetRepository()
			categories := &fakeCategoryRepository{categories: map[string]*entity.Category{food.ID: food}}
			uc := NewUpsertBudgetUseCase(budgets, categories)

			_, err := uc.Execute(context.Background(), tt.input)
			if code := budgetErrorCode(t, err); code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, code)
			}
			if budgets.calls != 0 {
				t.Errorf("expected no budget store access, got %d calls", budgets.calls)
			}
		})
	}
}

func TestUpsertBudgetUseCase_Idempotent(t *testing.T) {
	food, _ := entity.NewCategory("Food", "#f00")
	budgets := newFakeBudgetRepository()
	categories := &fakeCategoryRepository{categories: map[string]*entity.Category{food.ID: food}}
	uc := NewUpsertBudgetUseCase(budgets, categories)

	input := UpsertBudgetInput{CategoryID: food.ID, Amount: "30", Month: "2024-01"}
	for i := 0; i < 2; i++ {
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i+1, err)
		}
		if output.Budget.Category == nil || output.Budget.Category.Name != "Food" {
			t.Errorf("expected category to be resolved on the result")
		}
	}

	if len(budgets.budgets) != 1 {
		t.Fatalf("expected exactly 1 budget, got %d", len(budgets.budgets))
	}
	for _, b := range budgets.budgets {
		if !b.Amount.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected amount 30, got %s", b.Amount)
		}
	}

	if _, err := uc.Execute(context.Background(), UpsertBudgetInput{CategoryID: food.ID, Amount: "45.5", Month: "2024-01"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets.budgets) != 1 {
		t.Fatalf("expected overwrite, got %d budgets", len(budgets.budgets))
	}
	for _, b := range budgets.budgets {
		if !b.Amount.Equal(decimal.RequireFromString("45.5")) {
			t.Errorf("expected amount 45.5, got %s", b.Amount)
		}
	}
}

func TestListBudgetsUseCase(t *testing.T) {
	t.Run("month is required", func(t *testing.T) {
		uc := NewListBudgetsUseCase(newFakeBudgetRepository())

		_, err := uc.Execute(context.Background(), ListBudgetsInput{})
		if code := budgetErrorCode(t, err); code != domainerror.ErrCodeBudgetMonthRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetMonthRequired, code)
		}
	})

	t.Run("month must be well formed", func(t *testing.T) {
		uc := NewListBudgetsUseCase(newFakeBudgetRepository())

		_, err := uc.Execute(context.Background(), ListBudgetsInput{Month: "Jan 2024"})
		if code := budgetErrorCode(t, err); code != domainerror.ErrCodeInvalidBudgetMonth {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidBudgetMonth, code)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		repo.failWith = errors.New("unreachable")
		uc := NewListBudgetsUseCase(repo)

		if _, err := uc.Execute(context.Background(), ListBudgetsInput{Month: "2024-01"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("filters by month", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		jan, _ := valueobject.ParseMonth("2024-01")
		feb, _ := valueobject.ParseMonth("2024-02")
		b1, _ := entity.NewBudget("0123456789abcdef01234567", decimal.NewFromInt(30), jan)
		b2, _ := entity.NewBudget("0123456789abcdef01234567", decimal.NewFromInt(40), feb)
		_, _ = repo.Upsert(context.Background(), b1)
		_, _ = repo.Upsert(context.Background(), b2)
		repo.calls = 0
		uc := NewListBudgetsUseCase(repo)

		output, err := uc.Execute(context.Background(), ListBudgetsInput{Month: "2024-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 1 || !output.Budgets[0].Amount.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected the February budget only, got %v", output.Budgets)
		}
	})
}
