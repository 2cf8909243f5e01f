package models

// Category is a static label/icon/color grouping referenced by numeric id.
// Categories are compiled into the binary and never persisted.
type Category struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Kind  TransactionKind `json:"type"`
}
