package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/shoplist/internal/model"
	"github.com/deppfellow/shoplist/internal/validation"
)

// NoRequest is the payload of endpoints without input.
type NoRequest struct{}

func (r *NoRequest) Validate() error { return nil }

type ItemIDRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *ItemIDRequest) Validate() error {
	return validation.Validator.Struct(r)
}

// itemBody is the writable part of a shopping item. Absent JSON fields stay
// nil and are not written.
type itemBody struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price     *decimal.Decimal `json:"price"`
	Category  *string          `json:"category" validate:"omitempty,max=100"`
	DateAdded *time.Time       `json:"date_added"`
	Checked   *bool            `json:"checked"`
}

func (b itemBody) fields() model.ItemFields {
	return model.ItemFields{
		Name:      b.Name,
		Price:     b.Price,
		Category:  b.Category,
		DateAdded: b.DateAdded,
		Checked:   b.Checked,
	}
}

func (b itemBody) validatePrice() error {
	if b.Price != nil && b.Price.IsNegative() {
		return validation.CustomValidationErrors{{Field: "price", Message: "must not be negative"}}
	}
	return nil
}

type CreateItemRequest struct {
	itemBody
}

func (r *CreateItemRequest) Validate() error {
	if r.Name == nil {
		return validation.CustomValidationErrors{{Field: "name", Message: "is required"}}
	}
	if err := validation.Validator.Struct(r); err != nil {
		return err
	}
	return r.validatePrice()
}

type UpdateItemRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
	itemBody
}

func (r *UpdateItemRequest) Validate() error {
	if err := validation.Validator.Struct(r); err != nil {
		return err
	}
	return r.validatePrice()
}

// AffectedResponse reports how many rows a write touched.
type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

type SearchRequest struct {
	Term string `query:"term" validate:"max=255"`
}

func (r *SearchRequest) Validate() error {
	return validation.Validator.Struct(r)
}

type PageRequest struct {
	Page int `param:"page" validate:"gte=1"`
	Size int `query:"size" validate:"gte=0,max=100"`
}

func (r *PageRequest) Validate() error {
	return validation.Validator.Struct(r)
}

type RecentRequest struct {
	Days int `query:"days" validate:"required,gte=1"`
}

func (r *RecentRequest) Validate() error {
	return validation.Validator.Struct(r)
}

type DigestRequest struct {
	Days      int    `json:"days" validate:"gte=0"`
	Recipient string `json:"recipient" validate:"omitempty,email"`
}

func (r *DigestRequest) Validate() error {
	return validation.Validator.Struct(r)
}

// ListResponse wraps a collection so its size is reported to tracing.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func (l ListResponse[T]) Count() int { return len(l.Items) }

func listOf[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items}
}
