package product

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
	"github.com/shoplite/shoplite/internal/storage"
)

// extensionFor maps upload content types to file extensions for storage
// keys.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

func saveImages(ctx context.Context, files storage.Storage, uploads []ImageUpload) ([]domain.ProductImage, error) {
	images := make([]domain.ProductImage, 0, len(uploads))
	for _, upload := range uploads {
		content, err := base64.StdEncoding.DecodeString(upload.Content)
		if err != nil {
			return nil, fmt.Errorf("decode image upload: %w", err)
		}
		key := "products/" + uuid.New().String() + extensionFor(upload.ContentType)
		if _, err := files.Put(ctx, key, bytes.NewReader(content), upload.ContentType); err != nil {
			return nil, err
		}
		images = append(images, domain.ProductImage{FileName: key, FileType: upload.ContentType})
	}
	return images, nil
}

// CreateProductHandler checks the category and owner exist, builds the
// aggregate, stores uploaded images, and stages the product for commit.
type CreateProductHandler struct {
	begin app.UnitOfWorkFactory
	users app.UserDirectory
	files storage.Storage
}

func NewCreateProductHandler(begin app.UnitOfWorkFactory, users app.UserDirectory, files storage.Storage) *CreateProductHandler {
	return &CreateProductHandler{begin: begin, users: users, files: files}
}

func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProduct) (app.Result[bool], error) {
	uow := h.begin()

	if cmd.CategoryID != nil {
		category, err := uow.Categories().GetByID(ctx, *cmd.CategoryID)
		if err != nil {
			return app.Result[bool]{}, err
		}
		if category == nil {
			return app.Fail[bool]("CategoryID", "Category not found"), nil
		}
	}

	owner, err := h.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if owner == nil {
		return app.Fail[bool]("UserID", "User not found"), nil
	}

	prod, err := domain.NewProduct(cmd.Title, cmd.Description, cmd.Price, cmd.Quantity, cmd.State, cmd.UserID, cmd.CategoryID)
	if err != nil {
		return app.FailDomain[bool](err), nil
	}

	if len(cmd.Images) > 0 {
		images, err := saveImages(ctx, h.files, cmd.Images)
		if err != nil {
			return app.Result[bool]{}, err
		}
		for _, img := range images {
			prod.AddImage(img)
		}
	}

	if err := uow.Products().Create(ctx, prod); err != nil {
		return app.Result[bool]{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// EditProductHandler applies attribute changes and image additions/removals
// to an existing product; removed image blobs leave storage only after the
// commit succeeds.
type EditProductHandler struct {
	begin app.UnitOfWorkFactory
	files storage.Storage
}

func NewEditProductHandler(begin app.UnitOfWorkFactory, files storage.Storage) *EditProductHandler {
	return &EditProductHandler{begin: begin, files: files}
}

func (h *EditProductHandler) Handle(ctx context.Context, cmd EditProduct) (app.Result[bool], error) {
	uow := h.begin()

	if cmd.CategoryID != nil {
		category, err := uow.Categories().GetByID(ctx, *cmd.CategoryID)
		if err != nil {
			return app.Result[bool]{}, err
		}
		if category == nil {
			return app.Fail[bool]("CategoryID", "Category not found"), nil
		}
	}

	prod, err := uow.Products().GetByIDTracked(ctx, cmd.ProductID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if prod == nil {
		return app.Fail[bool]("ProductID", "Product not found"), nil
	}

	if err := prod.Edit(cmd.Title, cmd.Description, cmd.Price, cmd.Quantity, cmd.CategoryID); err != nil {
		return app.FailDomain[bool](err), nil
	}
	if cmd.State != nil {
		if err := prod.ChangeState(*cmd.State); err != nil {
			return app.FailDomain[bool](err), nil
		}
	}

	prod.RemoveImages(cmd.RemovedImages)

	if len(cmd.AddedImages) > 0 {
		images, err := saveImages(ctx, h.files, cmd.AddedImages)
		if err != nil {
			return app.Result[bool]{}, err
		}
		for _, img := range images {
			prod.AddImage(img)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}

	// Blobs are deleted only after the commit, so a failed commit never
	// leaves image rows pointing at missing files.
	for _, name := range cmd.RemovedImages {
		if err := h.files.Delete(ctx, name); err != nil {
			return app.Result[bool]{}, err
		}
	}
	return app.Ok(true), nil
}

// DeleteProductHandler removes a product; its stored images are deleted only
// after the commit succeeds.
type DeleteProductHandler struct {
	begin app.UnitOfWorkFactory
	files storage.Storage
}

func NewDeleteProductHandler(begin app.UnitOfWorkFactory, files storage.Storage) *DeleteProductHandler {
	return &DeleteProductHandler{begin: begin, files: files}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProduct) (app.Result[bool], error) {
	uow := h.begin()

	prod, err := uow.Products().GetByIDTracked(ctx, cmd.ID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if prod == nil {
		return app.NotFound[bool]("ID", "Product not found"), nil
	}

	if err := uow.Products().Delete(ctx, prod); err != nil {
		return app.Result[bool]{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}

	for _, img := range prod.Images() {
		if err := h.files.Delete(ctx, img.FileName); err != nil {
			return app.Result[bool]{}, err
		}
	}
	return app.Ok(true), nil
}

// GetProductsHandler lists catalog products matching a title search, with
// the first image of each resolved to a URL.
type GetProductsHandler struct {
	begin app.UnitOfWorkFactory
	files storage.Storage
}

func NewGetProductsHandler(begin app.UnitOfWorkFactory, files storage.Storage) *GetProductsHandler {
	return &GetProductsHandler{begin: begin, files: files}
}

func (h *GetProductsHandler) Handle(ctx context.Context, q GetProducts) (app.Result[[]Summary], error) {
	uow := h.begin()

	if q.CategoryID != nil {
		category, err := uow.Categories().GetByID(ctx, *q.CategoryID)
		if err != nil {
			return app.Result[[]Summary]{}, err
		}
		if category == nil {
			return app.Fail[[]Summary]("CategoryID", "Category not found"), nil
		}
	}

	products, err := uow.Products().List(ctx, app.ProductFilter{
		Title:      q.Title,
		Page:       q.CurrentPage,
		PerPage:    q.PageCount,
		CategoryID: q.CategoryID,
	})
	if err != nil {
		return app.Result[[]Summary]{}, err
	}

	results := make([]Summary, 0, len(products))
	for _, p := range products {
		summary := Summary{
			ProductID: p.ID(),
			Title:     p.Title(),
			Price:     p.Price(),
			Quantity:  p.Quantity(),
		}
		if images := p.Images(); len(images) > 0 {
			summary.Image = &ImageRef{
				Name: images[0].FileName,
				URL:  h.files.URL(images[0].FileName),
			}
		}
		results = append(results, summary)
	}
	return app.Ok(results), nil
}

// GetProductDetailByIDHandler projects one product with its owner, category
// and image URLs.
type GetProductDetailByIDHandler struct {
	begin app.UnitOfWorkFactory
	users app.UserDirectory
	files storage.Storage
}

func NewGetProductDetailByIDHandler(begin app.UnitOfWorkFactory, users app.UserDirectory, files storage.Storage) *GetProductDetailByIDHandler {
	return &GetProductDetailByIDHandler{begin: begin, users: users, files: files}
}

func (h *GetProductDetailByIDHandler) Handle(ctx context.Context, q GetProductDetailByID) (app.Result[*Detail], error) {
	uow := h.begin()

	prod, err := uow.Products().GetByID(ctx, q.ID)
	if err != nil {
		return app.Result[*Detail]{}, err
	}
	if prod == nil {
		return app.NotFound[*Detail]("ID", "Product not found"), nil
	}

	owner, err := h.users.FindByID(ctx, prod.UserID())
	if err != nil {
		return app.Result[*Detail]{}, err
	}
	if owner == nil {
		return app.Result[*Detail]{}, fmt.Errorf("product %s references missing owner %s", prod.ID(), prod.UserID())
	}

	detail := &Detail{
		ProductID:   prod.ID(),
		Title:       prod.Title(),
		Description: prod.Description(),
		Price:       prod.Price(),
		Quantity:    prod.Quantity(),
		State:       prod.State(),
		CategoryID:  prod.CategoryID(),
		Owner: Owner{
			ID:        owner.ID(),
			FirstName: owner.FirstName(),
			LastName:  owner.LastName(),
			UserName:  owner.UserName(),
			Email:     owner.Email(),
			Phone:     owner.PhoneNumber(),
		},
		Images: make([]ImageRef, 0, len(prod.Images())),
	}

	if prod.CategoryID() != nil {
		category, err := uow.Categories().GetByID(ctx, *prod.CategoryID())
		if err != nil {
			return app.Result[*Detail]{}, err
		}
		if category != nil {
			detail.CategoryTitle = category.Title()
		}
	}

	for _, img := range prod.Images() {
		detail.Images = append(detail.Images, ImageRef{
			Name: img.FileName,
			URL:  h.files.URL(img.FileName),
		})
	}
	return app.Ok(detail), nil
}
