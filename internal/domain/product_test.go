package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite/internal/domain"
)

func Test_NewProduct(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	p, err := domain.NewProduct("Coffee Grinder", "burr grinder", price("59.90"), 10,
		domain.ProductStateInactive, userID, &categoryID)
	require.NoError(t, err)

	assert.Equal(t, "Coffee Grinder", p.Title())
	assert.Equal(t, 10, p.Quantity())
	assert.Equal(t, domain.ProductStateInactive, p.State())
	assert.Equal(t, userID, p.UserID())
	require.NotNil(t, p.CategoryID())
	assert.Equal(t, categoryID, *p.CategoryID())
}

func Test_NewProduct_Guards(t *testing.T) {
	userID := uuid.New()
	nilCategory := uuid.Nil

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"empty title", func() error {
			_, err := domain.NewProduct("", "", price("1.00"), 1, domain.ProductStateActive, userID, nil)
			return err
		}, domain.ErrTitleRequired},
		{"zero price", func() error {
			_, err := domain.NewProduct("x", "", price("0"), 1, domain.ProductStateActive, userID, nil)
			return err
		}, domain.ErrPriceNotPositive},
		{"negative quantity", func() error {
			_, err := domain.NewProduct("x", "", price("1.00"), -1, domain.ProductStateActive, userID, nil)
			return err
		}, domain.ErrQuantityNegative},
		{"missing owner", func() error {
			_, err := domain.NewProduct("x", "", price("1.00"), 1, domain.ProductStateActive, uuid.Nil, nil)
			return err
		}, domain.ErrUserIDRequired},
		{"zero category", func() error {
			_, err := domain.NewProduct("x", "", price("1.00"), 1, domain.ProductStateActive, userID, &nilCategory)
			return err
		}, domain.ErrCategoryIDRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}
}

func Test_NewProduct_DefaultsToActiveState(t *testing.T) {
	p, err := domain.NewProduct("x", "", price("1.00"), 0, domain.ProductState("bogus"), uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStateActive, p.State())
}

func Test_Product_ZeroQuantityAllowed(t *testing.T) {
	p, err := domain.NewProduct("sold out", "", price("1.00"), 0, domain.ProductStateActive, uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity())
}

func Test_Product_Edit(t *testing.T) {
	p, err := domain.NewProduct("old", "old desc", price("1.00"), 1, domain.ProductStateActive, uuid.New(), nil)
	require.NoError(t, err)
	categoryID := uuid.New()

	require.NoError(t, p.Edit("new", "new desc", price("2.50"), 8, &categoryID))
	assert.Equal(t, "new", p.Title())
	assert.True(t, p.Price().Equal(price("2.50")))
	assert.Equal(t, 8, p.Quantity())

	assert.ErrorIs(t, p.Edit("", "", price("2.50"), 8, nil), domain.ErrTitleRequired)
	assert.Equal(t, "new", p.Title(), "failed edit must not change the product")
}

func Test_Product_ChangeState(t *testing.T) {
	p, err := domain.NewProduct("x", "", price("1.00"), 1, domain.ProductStateActive, uuid.New(), nil)
	require.NoError(t, err)

	require.NoError(t, p.ChangeState(domain.ProductStateInactive))
	assert.Equal(t, domain.ProductStateInactive, p.State())

	assert.ErrorIs(t, p.ChangeState(domain.ProductState("gone")), domain.ErrInvalidProductState)
	assert.Equal(t, domain.ProductStateInactive, p.State())
}

func Test_Product_Images(t *testing.T) {
	p, err := domain.NewProduct("x", "", price("1.00"), 1, domain.ProductStateActive, uuid.New(), nil)
	require.NoError(t, err)

	p.AddImage(domain.ProductImage{FileName: "a.png", FileType: "image/png"})
	p.AddImage(domain.ProductImage{FileName: "b.jpg", FileType: "image/jpeg"})
	p.AddImage(domain.ProductImage{FileName: "c.png", FileType: "image/png"})
	require.Len(t, p.Images(), 3)

	p.RemoveImages([]string{"a.png", "c.png", "unknown.gif"})

	images := p.Images()
	require.Len(t, images, 1)
	assert.Equal(t, "b.jpg", images[0].FileName)
}

func Test_NewCategory(t *testing.T) {
	parentID := uuid.New()

	c, err := domain.NewCategory("Kitchen", &parentID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", c.Title())
	require.NotNil(t, c.ParentID())
	assert.Equal(t, parentID, *c.ParentID())

	_, err = domain.NewCategory("", nil)
	assert.ErrorIs(t, err, domain.ErrTitleRequired)
}

func Test_NewUser(t *testing.T) {
	u, err := domain.NewUser("Ada", "Lovelace", "ada", "ada@example.com", "01234567890")
	require.NoError(t, err)
	assert.False(t, u.EmailConfirmed())

	u.ConfirmEmail()
	assert.True(t, u.EmailConfirmed())

	_, err = domain.NewUser("", "", "ada", "ada@example.com", "")
	assert.ErrorIs(t, err, domain.ErrFirstNameRequired)
	_, err = domain.NewUser("Ada", "", "", "ada@example.com", "")
	assert.ErrorIs(t, err, domain.ErrUserNameRequired)
	_, err = domain.NewUser("Ada", "", "ada", "", "")
	assert.ErrorIs(t, err, domain.ErrEmailRequired)
}
