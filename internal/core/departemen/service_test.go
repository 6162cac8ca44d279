package departemen

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeDepartemenRepo struct {
	departemens map[string]*Departemen
}

func (r *fakeDepartemenRepo) FindByID(_ context.Context, id string) (*Departemen, error) {
	d, ok := r.departemens[id]
	if !ok {
		return nil, ErrDepartemenNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *fakeDepartemenRepo) List(_ context.Context) ([]*Departemen, error) {
	result := make([]*Departemen, 0, len(r.departemens))
	for _, d := range r.departemens {
		clone := *d
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].NamaDepartemen < result[j].NamaDepartemen
	})
	return result, nil
}

func TestGetDepartemen(t *testing.T) {
	t.Parallel()

	repo := &fakeDepartemenRepo{departemens: map[string]*Departemen{
		"dep-1": {ID: "dep-1", NamaDepartemen: "Production", SlugDepartemen: "production"},
	}}
	svc := NewService(repo)

	found, err := svc.GetDepartemen(context.Background(), "dep-1")
	if err != nil {
		t.Fatalf("GetDepartemen returned error: %v", err)
	}
	if found.NamaDepartemen != "Production" {
		t.Errorf("unexpected nama: %s", found.NamaDepartemen)
	}

	if _, err := svc.GetDepartemen(context.Background(), "  "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	if _, err := svc.GetDepartemen(context.Background(), "missing"); !errors.Is(err, ErrDepartemenNotFound) {
		t.Fatalf("expected ErrDepartemenNotFound, got %v", err)
	}
}

func TestListDepartemens_OrderedByName(t *testing.T) {
	t.Parallel()

	repo := &fakeDepartemenRepo{departemens: map[string]*Departemen{
		"dep-1": {ID: "dep-1", NamaDepartemen: "QC"},
		"dep-2": {ID: "dep-2", NamaDepartemen: "Finance"},
		"dep-3": {ID: "dep-3", NamaDepartemen: "IT"},
	}}
	svc := NewService(repo)

	list, err := svc.ListDepartemens(context.Background())
	if err != nil {
		t.Fatalf("ListDepartemens returned error: %v", err)
	}

	want := []string{"Finance", "IT", "QC"}
	for i, d := range list {
		if d.NamaDepartemen != want[i] {
			t.Fatalf("expected %v, got %s at %d", want, d.NamaDepartemen, i)
		}
	}
}
