package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
)

type mockCategoryRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetAllFunc  func(ctx context.Context) ([]*domain.Category, error)
	created     []*domain.Category
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	m.created = append(m.created, category)
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]*domain.Category, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

type mockCartRepo struct{}

func (m *mockCartRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	return nil, nil
}
func (m *mockCartRepo) Create(ctx context.Context, cart *domain.Cart) error { return nil }

type mockProductRepo struct{}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error { return nil }
func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) GetByIDTracked(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) List(ctx context.Context, filter app.ProductFilter) ([]*domain.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) Delete(ctx context.Context, product *domain.Product) error { return nil }

type mockUnitOfWork struct {
	categories *mockCategoryRepo

	commits   int
	commitErr error
}

func newMockUnitOfWork() *mockUnitOfWork {
	return &mockUnitOfWork{categories: &mockCategoryRepo{}}
}

func (m *mockUnitOfWork) Carts() app.CartRepository          { return &mockCartRepo{} }
func (m *mockUnitOfWork) Products() app.ProductRepository    { return &mockProductRepo{} }
func (m *mockUnitOfWork) Categories() app.CategoryRepository { return m.categories }

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	m.commits++
	return m.commitErr
}

func (m *mockUnitOfWork) factory() app.UnitOfWorkFactory {
	return func() app.UnitOfWork { return m }
}

func Test_CreateCategory(t *testing.T) {
	uow := newMockUnitOfWork()

	h := NewCreateCategoryHandler(uow.factory())
	res, err := h.Handle(context.Background(), CreateCategory{Title: "Peripherals"})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 1, uow.commits)

	require.Len(t, uow.categories.created, 1)
	assert.Equal(t, "Peripherals", uow.categories.created[0].Title())
	assert.Nil(t, uow.categories.created[0].ParentID())
}

func Test_CreateCategory_NestedUnderParent(t *testing.T) {
	parent, err := domain.NewCategory("Electronics", nil)
	require.NoError(t, err)
	parentID := parent.ID()

	uow := newMockUnitOfWork()
	uow.categories.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
		if id == parentID {
			return parent, nil
		}
		return nil, nil
	}

	h := NewCreateCategoryHandler(uow.factory())
	res, err := h.Handle(context.Background(), CreateCategory{Title: "Keyboards", ParentID: &parentID})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	require.Len(t, uow.categories.created, 1)
	require.NotNil(t, uow.categories.created[0].ParentID())
	assert.Equal(t, parentID, *uow.categories.created[0].ParentID())
}

func Test_CreateCategory_ParentNotFound(t *testing.T) {
	uow := newMockUnitOfWork()
	parentID := uuid.New()

	h := NewCreateCategoryHandler(uow.factory())
	res, err := h.Handle(context.Background(), CreateCategory{Title: "Keyboards", ParentID: &parentID})

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, "ParentID", res.Errors()[0].Field)
	assert.Equal(t, 0, uow.commits)
}

func Test_GetAllCategories(t *testing.T) {
	first, err := domain.NewCategory("Electronics", nil)
	require.NoError(t, err)
	parentID := first.ID()
	second, err := domain.NewCategory("Keyboards", &parentID)
	require.NoError(t, err)

	uow := newMockUnitOfWork()
	uow.categories.GetAllFunc = func(ctx context.Context) ([]*domain.Category, error) {
		return []*domain.Category{first, second}, nil
	}

	h := NewGetAllCategoriesHandler(uow.factory())
	res, err := h.Handle(context.Background(), GetAllCategories{})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())

	results := res.Value()
	require.Len(t, results, 2)
	assert.Equal(t, "Electronics", results[0].Title)
	require.NotNil(t, results[1].ParentID)
	assert.Equal(t, parentID, *results[1].ParentID)
}

func Test_GetAllCategories_EmptyCatalog(t *testing.T) {
	h := NewGetAllCategoriesHandler(newMockUnitOfWork().factory())
	res, err := h.Handle(context.Background(), GetAllCategories{})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.NotNil(t, res.Value())
	assert.Empty(t, res.Value())
}

func Test_GetCategoryByID(t *testing.T) {
	category, err := domain.NewCategory("Peripherals", nil)
	require.NoError(t, err)

	uow := newMockUnitOfWork()
	uow.categories.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
		if id == category.ID() {
			return category, nil
		}
		return nil, nil
	}

	h := NewGetCategoryByIDHandler(uow.factory())
	res, err := h.Handle(context.Background(), GetCategoryByID{ID: category.ID()})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, category.ID(), res.Value().ID)
	assert.Equal(t, "Peripherals", res.Value().Title)
}

func Test_GetCategoryByID_NotFound(t *testing.T) {
	h := NewGetCategoryByIDHandler(newMockUnitOfWork().factory())
	res, err := h.Handle(context.Background(), GetCategoryByID{ID: uuid.New()})

	require.NoError(t, err)
	assert.True(t, res.IsNotFound())
	assert.Equal(t, "Category not found", res.Errors()[0].Message)
}
