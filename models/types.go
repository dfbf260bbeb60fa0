package models

import "time"

// Request types

type CreateListRequest struct {
	Name string `json:"name"`
}

type RenameListRequest struct {
	Name string `json:"name"`
}

// Unit and category are names, resolved against the registries (and the
// catalog when empty).
type CreateItemRequest struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit"`
	Category string   `json:"category"`
	Comment  string   `json:"comment"`
	Scope    string   `json:"scope"`
}

type UpdateItemRequest struct {
	Name      *string  `json:"name,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Comment   *string  `json:"comment,omitempty"`
	Scope     *string  `json:"scope,omitempty"`
	Purchased *bool    `json:"purchased,omitempty"`
}

type ToggleItemRequest struct {
	Purchased bool `json:"purchased"`
}

type PreviewShareRequest struct {
	Data string `json:"data"`
}

// mode is "new" or "merge"
type ImportShareRequest struct {
	Data         string `json:"data"`
	Mode         string `json:"mode"`
	TargetListID string `json:"target_list_id,omitempty"`
}

// Response types

type ShareResponse struct {
	Data       string `json:"data"`
	Format     string `json:"format"`
	Compressed bool   `json:"compressed"`
	Size       string `json:"size"`
	ShareURL   string `json:"share_url"`
}

type ImportShareResponse struct {
	ListID   string `json:"list_id"`
	Imported int    `json:"imported"`
}

type SuggestResponse struct {
	Products []Product `json:"products"`
}

// Domain types

type ShoppingList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Unit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
}

type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	UnitID     string `json:"unit_id"`
}

type Item struct {
	ID         string    `json:"id"`
	ListID     string    `json:"list_id"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	UnitID     string    `json:"unit_id"`
	CategoryID string    `json:"category_id"`
	Comment    string    `json:"comment"`
	Scope      string    `json:"scope"`
	Purchased  bool      `json:"purchased"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemFields are the caller-supplied fields of a new item.
type ItemFields struct {
	ProductID  string
	Name       string
	Quantity   float64
	UnitID     string
	CategoryID string
	Comment    string
	Scope      string
	Purchased  bool
}

// ItemPatch holds the fields to change on an item; nil means unchanged.
type ItemPatch struct {
	Name       *string
	Quantity   *float64
	UnitID     *string
	CategoryID *string
	Comment    *string
	Scope      *string
	Purchased  *bool
}

type ListWithItems struct {
	List  ShoppingList `json:"list"`
	Items []Item       `json:"items"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
