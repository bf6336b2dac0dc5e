package domain_test

import (
	"math/rand"
	"testing"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

func sampleRows() []domain.MenuRow {
	return []domain.MenuRow{
		{RestaurantID: 1, RestaurantName: "X", RestaurantAddress: "Addr-X", ProductID: 10, Availability: true},
		{RestaurantID: 1, RestaurantName: "X", RestaurantAddress: "Addr-X", ProductID: 20, Availability: true},
		{RestaurantID: 2, RestaurantName: "Y", RestaurantAddress: "Addr-Y", ProductID: 10, Availability: true},
		{RestaurantID: 2, RestaurantName: "Y", RestaurantAddress: "Addr-Y", ProductID: 20, Availability: false},
	}
}

func TestBuildMenuIndex_FiltersUnavailable(t *testing.T) {
	idx := domain.BuildMenuIndex(sampleRows())

	if idx.Len() != 2 {
		t.Fatalf("want 2 restaurants, got %d", idx.Len())
	}
	if !idx.Sells(1, 20) {
		t.Fatalf("restaurant 1 must sell product 20")
	}
	if idx.Sells(2, 20) {
		t.Fatalf("availability=false must not be indexed")
	}
}

func TestBuildMenuIndex_FirstSeenInfoWins(t *testing.T) {
	rows := []domain.MenuRow{
		{RestaurantID: 1, RestaurantName: "First", RestaurantAddress: "A1", ProductID: 10, Availability: true},
		{RestaurantID: 1, RestaurantName: "Second", RestaurantAddress: "A2", ProductID: 20, Availability: true},
	}
	idx := domain.BuildMenuIndex(rows)

	info, ok := idx.Restaurant(1)
	if !ok || info.Name != "First" || info.Address != "A1" {
		t.Fatalf("first-seen info must win, got %+v ok=%v", info, ok)
	}
}

func TestBuildMenuIndex_Empty(t *testing.T) {
	idx := domain.BuildMenuIndex(nil)
	if idx.Len() != 0 {
		t.Fatalf("empty input must produce empty index")
	}
	if got := idx.CapableRestaurants([]int64{1}); len(got) != 0 {
		t.Fatalf("empty index must have no capable restaurants, got %v", got)
	}
}

func TestCapableRestaurants_SupersetOnly(t *testing.T) {
	// Ресторан X продаёт {P1, P2}; Y — только {P1}.
	idx := domain.BuildMenuIndex(sampleRows())

	// Заказ {P1, P2} — только X.
	got := idx.CapableRestaurants([]int64{10, 20})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("order {10,20}: want only restaurant 1, got %v", got)
	}

	// Заказ {P1} — и X, и Y.
	got = idx.CapableRestaurants([]int64{10})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("order {10}: want restaurants 1 and 2, got %v", got)
	}

	// Товар, которого нет ни у кого.
	if got := idx.CapableRestaurants([]int64{99}); len(got) != 0 {
		t.Fatalf("order {99}: want no candidates, got %v", got)
	}
}

func TestCapableRestaurants_EmptyWantSetMatchesAll(t *testing.T) {
	idx := domain.BuildMenuIndex(sampleRows())
	if got := idx.CapableRestaurants(nil); len(got) != 2 {
		t.Fatalf("empty product set must match all restaurants, got %v", got)
	}
}

func TestCapableRestaurants_Idempotent(t *testing.T) {
	idx := domain.BuildMenuIndex(sampleRows())
	first := idx.CapableRestaurants([]int64{10})
	second := idx.CapableRestaurants([]int64{10})

	if len(first) != len(second) {
		t.Fatalf("repeated match differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated match differs at %d: %v vs %v", i, first, second)
		}
	}
}

// Свойство: ресторан — кандидат тогда и только тогда, когда каждый товар
// заказа есть в его множестве доступных.
func TestCapableRestaurants_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 200; iter++ {
		var rows []domain.MenuRow
		menus := make(map[int64]map[int64]bool)
		for r := int64(1); r <= 5; r++ {
			menus[r] = make(map[int64]bool)
			for p := int64(1); p <= 8; p++ {
				if rng.Intn(2) == 0 {
					continue
				}
				menus[r][p] = true
				rows = append(rows, domain.MenuRow{
					RestaurantID: r, RestaurantName: "R", RestaurantAddress: "A",
					ProductID: p, Availability: true,
				})
			}
		}

		var want []int64
		for p := int64(1); p <= 8; p++ {
			if rng.Intn(3) == 0 {
				want = append(want, p)
			}
		}

		idx := domain.BuildMenuIndex(rows)
		got := make(map[int64]bool)
		for _, info := range idx.CapableRestaurants(want) {
			got[info.ID] = true
		}

		for r := int64(1); r <= 5; r++ {
			expect := len(menus[r]) > 0 // пустые меню не попадают в индекс
			for _, p := range want {
				if !menus[r][p] {
					expect = false
					break
				}
			}
			if got[r] != expect {
				t.Fatalf("iter=%d restaurant=%d: capable=%v want=%v (menu=%v order=%v)",
					iter, r, got[r], expect, menus[r], want)
			}
		}
	}
}
