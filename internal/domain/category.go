package domain

import "github.com/google/uuid"

// Category is a catalog category, optionally nested under a parent.
type Category struct {
	id       uuid.UUID
	title    string
	parentID *uuid.UUID
}

// NewCategory creates a category with the given title and optional parent.
func NewCategory(title string, parentID *uuid.UUID) (*Category, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	return &Category{
		id:       uuid.New(),
		title:    title,
		parentID: parentID,
	}, nil
}

// RehydrateCategory reconstructs a category from persisted state.
func RehydrateCategory(id uuid.UUID, title string, parentID *uuid.UUID) *Category {
	return &Category{id: id, title: title, parentID: parentID}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Title() string        { return c.title }
func (c *Category) ParentID() *uuid.UUID { return c.parentID }

// Edit renames the category and moves it under a new parent.
func (c *Category) Edit(title string, parentID *uuid.UUID) error {
	if title == "" {
		return ErrTitleRequired
	}
	c.title = title
	c.parentID = parentID
	return nil
}

// Equal compares categories by identity.
func (c *Category) Equal(other *Category) bool {
	return other != nil && c.id == other.id
}
