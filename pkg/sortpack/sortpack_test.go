package sortpack

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

type tag struct {
	name string
	rank int
}

var (
	tagA = tag{"A", 0}
	tagB = tag{"B", 1}
	tagC = tag{"C", 2}
	tagD = tag{"D", 3}
)

type list []tag

var byRank = Less[tag](func(x, y tag) bool { return x.rank < y.rank })

func TestPrepend(t *testing.T) {
	tests := []struct {
		name string
		in   list
		head tag
		want list
	}{
		{"empty", list{}, tagA, list{tagA}},
		{"non-empty", list{tagB, tagC}, tagA, list{tagA, tagB, tagC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prepend(tt.in, tt.head)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Prepend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertSorted(t *testing.T) {
	tests := []struct {
		name   string
		sorted list
		elem   tag
		want   list
	}{
		{"into empty", list{}, tagC, list{tagC}},
		{"after single", list{tagA}, tagB, list{tagA, tagB}},
		{"front", list{tagB, tagC}, tagA, list{tagA, tagB, tagC}},
		{"middle", list{tagA, tagC}, tagB, list{tagA, tagB, tagC}},
		{"back", list{tagA, tagB}, tagD, list{tagA, tagB, tagD}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertSorted(tt.sorted, tt.elem, byRank)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InsertSorted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertSortedTiesGoAfterEqual(t *testing.T) {
	first := tag{"first", 1}
	second := tag{"second", 1}
	got := InsertSorted(list{tagA, first, tagC}, second, byRank)
	want := list{tagA, first, second, tagC}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InsertSorted() = %v, want %v", got, want)
	}
}

func TestInsertSortedDoesNotMutate(t *testing.T) {
	in := make(list, 2, 8)
	in[0], in[1] = tagA, tagC
	_ = InsertSorted(in, tagB, byRank)
	if !reflect.DeepEqual(in, list{tagA, tagC}) {
		t.Errorf("input changed to %v", in)
	}
	if got := in[:3][2]; got != (tag{}) {
		t.Errorf("spare capacity was written: %v", got)
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   list
		want list
	}{
		{"empty", list{}, list{}},
		{"single", list{tagC}, list{tagC}},
		{"scrambled", list{tagC, tagA, tagD, tagB}, list{tagA, tagB, tagC, tagD}},
		{"reversed", list{tagD, tagC, tagB, tagA}, list{tagA, tagB, tagC, tagD}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(tt.in, byRank)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortTies(t *testing.T) {
	a1 := tag{"a1", 0}
	a2 := tag{"a2", 0}
	got := Sort(list{a1, tagB, a2}, byRank)
	want := list{a2, a1, tagB}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestSortInts(t *testing.T) {
	desc := Less[int](func(x, y int) bool { return x > y })
	got := Sort([]int{3, 9, 1, 4}, desc)
	if !slices.Equal(got, []int{9, 4, 3, 1}) {
		t.Errorf("Sort() = %v", got)
	}
}

func TestSortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	asc := Less[int](func(x, y int) bool { return x < y })
	for round := 0; round < 200; round++ {
		in := make([]int, rng.Intn(12))
		for i := range in {
			in[i] = rng.Intn(6)
		}
		got := Sort(in, asc)
		if !IsSorted(got, asc) {
			t.Fatalf("Sort(%v) = %v has an inversion", in, got)
		}
		want := slices.Clone(in)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("Sort(%v) = %v changed the multiset", in, got)
		}
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted(list{}, byRank) {
		t.Error("empty sequence should be sorted")
	}
	if !IsSorted(list{tagA, tagA, tagB}, byRank) {
		t.Error("equal neighbours are not an inversion")
	}
	if IsSorted(list{tagB, tagA}, byRank) {
		t.Error("expected inversion to be detected")
	}
}
