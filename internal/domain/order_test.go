package domain_test

import (
	"testing"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

func TestOrder_ProductIDs(t *testing.T) {
	o := &domain.Order{
		Items: []domain.OrderItem{
			{ProductID: 3, Quantity: 1},
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 5},
			{ProductID: 2, Quantity: 1},
		},
	}

	got := o.ProductIDs()
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("ProductIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ProductIDs() = %v, want %v", got, want)
		}
	}
}

func TestOrder_Assigned(t *testing.T) {
	o := &domain.Order{}
	if o.Assigned() {
		t.Fatalf("order without restaurant must not be assigned")
	}

	id := int64(7)
	o.CookingRestaurantID = &id
	if !o.Assigned() {
		t.Fatalf("order with restaurant must be assigned")
	}
}
