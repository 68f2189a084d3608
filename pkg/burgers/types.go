package burgers

import (
	"time"
)

// Burger represents a burger on the menu.
type Burger struct {
	ID          int     `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BurgerCreate is the payload for creating a burger.
type BurgerCreate struct {
	Name        string  `json:"name"                  validate:"required" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BurgerUpdate is the payload for updating a burger. Nil fields are left unchanged.
type BurgerUpdate struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// OrderStatuses lists every known order status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusInProgress,
		OrderStatusReady,
		OrderStatusDelivered,
	}
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusReady, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Order represents a table's order.
type Order struct {
	ID        int         `json:"id"             yaml:"id"`
	BurgerIDs []int       `json:"burger_ids"     yaml:"burger_ids"`
	Time      time.Time   `json:"time"           yaml:"time"`
	Table     int         `json:"table"          yaml:"table"`
	Status    OrderStatus `json:"status"         yaml:"status"`
	Note      *string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// OrderCreate is the payload for creating an order.
type OrderCreate struct {
	BurgerIDs []int       `json:"burger_ids"     validate:"required,min=1"                                 yaml:"burger_ids"`
	Time      time.Time   `json:"time"           validate:"required"                                       yaml:"time"`
	Table     int         `json:"table"          validate:"gte=0"                                          yaml:"table"`
	Status    OrderStatus `json:"status"         validate:"required,oneof=pending in_progress ready delivered" yaml:"status"`
	Note      *string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// OrderUpdate is the payload for updating an order. Nil fields are left unchanged.
type OrderUpdate struct {
	BurgerIDs []int        `json:"burger_ids,omitempty" validate:"omitempty,min=1"                                    yaml:"burger_ids,omitempty"`
	Time      *time.Time   `json:"time,omitempty"       yaml:"time,omitempty"`
	Table     *int         `json:"table,omitempty"      validate:"omitempty,gte=0"                                    yaml:"table,omitempty"`
	Status    *OrderStatus `json:"status,omitempty"     validate:"omitempty,oneof=pending in_progress ready delivered" yaml:"status,omitempty"`
	Note      *string      `json:"note,omitempty"       yaml:"note,omitempty"`
}

// String returns s or the empty string for nil.
func String(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
