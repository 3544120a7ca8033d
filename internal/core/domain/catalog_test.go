package domain

import (
	"reflect"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC)
}

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Cloud Pillow", Description: "Soft memory foam pillow", Price: 49.99, Category: "Pillows", Rating: 4.8, CreatedAt: day(1)},
		{ID: 2, Name: "Velvet Cushion", Description: "Decorative velvet cushion", Price: 29.99, Category: "Cushions", Rating: 4.5, CreatedAt: day(2)},
		{ID: 3, Name: "Aurora Mattress", Description: "King size hybrid mattress", Price: 899.00, Category: "Mattresses", Rating: 4.9, CreatedAt: day(3)},
		{ID: 4, Name: "Basic Pillow", Description: "Everyday polyester pillow", Price: 19.99, Category: "Pillows", Rating: 4.1, CreatedAt: day(4)},
		{ID: 5, Name: "Silk Pillowcase", Description: "Mulberry silk cover", Price: 39.99, Category: "Accessories", Rating: 4.7, CreatedAt: day(5)},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterQuery_SearchMatchesNameAndDescription(t *testing.T) {
	q := FilterQuery{Search: "PILLOW", SortBy: SortByName}
	got := ids(q.Apply(sampleProducts()))

	// "pillow" appears in the names of 1 and 4 and in the name of 5
	// ("Pillowcase"); matching is case-insensitive substring.
	want := []int64{4, 1, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterQuery_SearchMatchesDescriptionOnly(t *testing.T) {
	q := FilterQuery{Search: "velvet cushion"}
	got := q.Apply(sampleProducts())
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected product 2, got %v", ids(got))
	}
}

func TestFilterQuery_CategoryIsExactMatch(t *testing.T) {
	q := FilterQuery{Category: "Pillows", SortBy: SortByPriceLow}
	got := ids(q.Apply(sampleProducts()))
	want := []int64{4, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterQuery_PriceCeiling(t *testing.T) {
	q := FilterQuery{MaxPrice: 40, SortBy: SortByPriceLow}
	got := ids(q.Apply(sampleProducts()))
	want := []int64{4, 2, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterQuery_ZeroCeilingMeansNoCeiling(t *testing.T) {
	q := FilterQuery{MaxPrice: 0}
	if got := q.Apply(sampleProducts()); len(got) != 5 {
		t.Errorf("expected all 5 products, got %d", len(got))
	}
}

func TestFilterQuery_SortPriceHigh(t *testing.T) {
	q := FilterQuery{SortBy: SortByPriceHigh}
	got := ids(q.Apply(sampleProducts()))
	want := []int64{3, 1, 5, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterQuery_SortRating(t *testing.T) {
	q := FilterQuery{SortBy: SortByRating}
	got := ids(q.Apply(sampleProducts()))
	want := []int64{3, 1, 5, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterQuery_SortNewest(t *testing.T) {
	q := FilterQuery{SortBy: SortByNewest}
	got := ids(q.Apply(sampleProducts()))
	want := []int64{5, 4, 3, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterQuery_UnknownSortFallsBackToName(t *testing.T) {
	known := FilterQuery{SortBy: SortByName}.Apply(sampleProducts())
	unknown := FilterQuery{SortBy: SortKey("bogus")}.Apply(sampleProducts())
	if !reflect.DeepEqual(ids(known), ids(unknown)) {
		t.Errorf("unknown sort key should order like name: %v vs %v", ids(known), ids(unknown))
	}
}

func TestFilterQuery_StableSortKeepsFetchOrderOnTies(t *testing.T) {
	products := []Product{
		{ID: 10, Name: "A", Price: 20, Rating: 4.0},
		{ID: 11, Name: "B", Price: 20, Rating: 4.0},
		{ID: 12, Name: "C", Price: 20, Rating: 4.0},
	}
	q := FilterQuery{SortBy: SortByPriceLow}
	got := ids(q.Apply(products))
	want := []int64{10, 11, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break should keep input order, got %v", got)
	}
}

func TestFilterQuery_ApplyIsPure(t *testing.T) {
	products := sampleProducts()
	original := ids(products)

	q := FilterQuery{SortBy: SortByPriceHigh, Search: "pillow"}
	first := ids(q.Apply(products))
	second := ids(q.Apply(products))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two applications differ: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(ids(products), original) {
		t.Errorf("input slice was mutated: %v", ids(products))
	}
}
