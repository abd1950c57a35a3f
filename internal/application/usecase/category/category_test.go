package category

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory adapter.CategoryRepository.
type fakeCategoryRepository struct {
	categories map[string]*entity.Category
	failWith   error
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, c := range r.categories {
		if c.Name == category.Name {
			return domainerror.ErrCategoryNameExists
		}
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepository) FindAll(_ context.Context) ([]*entity.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, c := range r.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateCategoryUseCase_Validation(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateCategoryInput
		expectedCode domainerror.CategoryErrorCode
	}{
		{
			name:         "empty name",
			input:        CreateCategoryInput{Name: "   ", Color: "#fff"},
			expectedCode: domainerror.ErrCodeCategoryNameRequired,
		},
		{
			name:         "name too long",
			input:        CreateCategoryInput{Name: strings.Repeat("a", MaxCategoryNameLength+1), Color: "#fff"},
			expectedCode: domainerror.ErrCodeCategoryNameTooLong,
		},
		{
			name:         "empty color",
			input:        CreateCategoryInput{Name: "Food", Color: ""},
			expectedCode: domainerror.ErrCodeCategoryColorRequired,
		},
		{
			name:         "reserved uncategorized name",
			input:        CreateCategoryInput{Name: "Uncategorized", Color: "#fff"},
			expectedCode: domainerror.ErrCodeCategoryNameReserved,
		},
		{
			name:         "reserved name in other case",
			input:        CreateCategoryInput{Name: " uncategorized ", Color: "#fff"},
			expectedCode: domainerror.ErrCodeCategoryNameReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

			_, err := uc.Execute(context.Background(), tt.input)

			var catErr *domainerror.CategoryError
			if !errors.As(err, &catErr) {
				t.Fatalf("expected CategoryError, got %v", err)
			}
			if catErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, catErr.Code)
			}
		})
	}
}

func TestCreateCategoryUseCase_AcceptsAnyColorToken(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCreateCategoryUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "  Food  ", Color: "tomato"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Category.Name != "Food" {
		t.Errorf("expected trimmed name Food, got %q", output.Category.Name)
	}
	if output.Category.Color != "tomato" {
		t.Errorf("expected color tomato, got %q", output.Category.Color)
	}
	if !entity.IsValidID(output.Category.ID) {
		t.Errorf("expected a valid id, got %q", output.Category.ID)
	}
	if len(repo.categories) != 1 {
		t.Errorf("expected 1 stored category, got %d", len(repo.categories))
	}
}

func TestCreateCategoryUseCase_DuplicateName(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCreateCategoryUseCase(repo)

	if _, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Food", Color: "#f00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Food", Color: "#0f0"})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Fatalf("expected ErrCategoryNameExists, got %v", err)
	}
}

func TestCreateCategoryUseCase_StoreFailureIsNotDomainError(t *testing.T) {
	repo := newFakeCategoryRepository()
	repo.failWith = errors.New("connection refused")
	uc := NewCreateCategoryUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Food", Color: "#f00"})
	if err == nil {
		t.Fatal("expected error")
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		t.Errorf("store failure must not be reported as a CategoryError, got code %s", catErr.Code)
	}
}

func TestListCategoriesUseCase_PropagatesFailure(t *testing.T) {
	repo := newFakeCategoryRepository()
	repo.failWith = errors.New("timeout")
	uc := NewListCategoriesUseCase(repo)

	if _, err := uc.Execute(context.Background()); err == nil {
		t.Fatal("expected error to propagate instead of an empty list")
	}
}

func TestSeedCategoriesUseCase_IsRepeatable(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewSeedCategoriesUseCase(NewCreateCategoryUseCase(repo))

	first, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Created) != len(entity.DefaultCategories) {
		t.Errorf("expected %d created, got %d", len(entity.DefaultCategories), len(first.Created))
	}

	second, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Created) != 0 {
		t.Errorf("expected nothing created on second run, got %v", second.Created)
	}
	if len(second.Skipped) != len(entity.DefaultCategories) {
		t.Errorf("expected all skipped on second run, got %d", len(second.Skipped))
	}
	if len(repo.categories) != len(entity.DefaultCategories) {
		t.Errorf("expected %d categories stored, got %d", len(entity.DefaultCategories), len(repo.categories))
	}
}
