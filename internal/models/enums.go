package models

import "fmt"

type Role string

const (
	RoleSeller   Role = "Seller"
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSeller, RoleCustomer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type Material string

const (
	MaterialCotton    Material = "Cotton"
	MaterialPolyester Material = "Polyester"
	MaterialSilk      Material = "Silk"
	MaterialWool      Material = "Wool"
	MaterialLinen     Material = "Linen"
	MaterialDenim     Material = "Denim"
	MaterialLeather   Material = "Leather"
)

func Materials() []Material {
	return []Material{
		MaterialCotton, MaterialPolyester, MaterialSilk,
		MaterialWool, MaterialLinen, MaterialDenim, MaterialLeather,
	}
}

func ParseMaterial(s string) (Material, error) {
	for _, m := range Materials() {
		if Material(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown material %q", s)
}

// OrderStatus is the closed status vocabulary. The expected progression is
// Pending -> Processing -> Shipped -> Delivered, with Cancelled reachable
// from any non-terminal state.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled,
	}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses() {
		if OrderStatus(s) == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransitionTo is the single place transition policy lives. Sellers use
// status changes for arbitrary corrections, so every transition between
// known statuses is currently allowed; tightening the progression later only
// touches this function.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if _, err := ParseOrderStatus(string(next)); err != nil {
		return false
	}
	return true
}
