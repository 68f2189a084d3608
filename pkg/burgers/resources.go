package burgers

import (
	"context"
)

// BurgerClient defines operations related to burgers.
type BurgerClient interface {
	List(ctx context.Context) ([]Burger, error)
	Get(ctx context.Context, burgerID int) (*Burger, error)
	Create(ctx context.Context, request *BurgerCreate) (*Burger, error)
	Update(ctx context.Context, burgerID int, request *BurgerUpdate) (*Burger, error)
	Delete(ctx context.Context, burgerID int) error
}

// OrderClient defines operations related to orders.
type OrderClient interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, orderID int) (*Order, error)
	Create(ctx context.Context, request *OrderCreate) (*Order, error)
	Update(ctx context.Context, orderID int, request *OrderUpdate) (*Order, error)
}
