package service

import (
	"context"
	"testing"

	"app/internal/model"

	"github.com/rs/zerolog"
)

func TestListServicesMapsViews(t *testing.T) {
	repo := &fakeServiceRepo{services: map[string]*model.Service{
		"svc-free": {ID: "svc-free", Name: "Daily Love Horoscope", Category: model.CategoryDaily, IsPremium: false, IsActive: true, PriceCredits: 0},
		"svc-paid": {ID: "svc-paid", Name: "Love Compatibility Reading", Category: model.CategoryCompatibility, IsPremium: true, IsActive: true, PriceCredits: 499},
	}}
	svc := NewCatalogService(repo, nil, 0, zerolog.Nop())

	views, err := svc.ListServices(context.Background(), "", "")
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}

	byID := map[string]model.ServiceView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	free := byID["svc-free"]
	if free.Price != "FREE" || !free.IsFree {
		t.Errorf("free service mapped to price %q, is_free %v", free.Price, free.IsFree)
	}
	paid := byID["svc-paid"]
	if paid.Price != "$4.99" || paid.IsFree {
		t.Errorf("premium service mapped to price %q, is_free %v", paid.Price, paid.IsFree)
	}
	for _, v := range views {
		if v.Rating < 4.6 || v.Rating > 5.0 {
			t.Errorf("rating %v outside [4.6, 5.0]", v.Rating)
		}
	}
}

func TestListServicesTypeFilter(t *testing.T) {
	repo := &filteringServiceRepo{all: []model.Service{
		{ID: "svc-free", Name: "Daily Love Horoscope", Category: model.CategoryDaily, IsActive: true},
		{ID: "svc-paid", Name: "Love Compatibility Reading", Category: model.CategoryCompatibility, IsPremium: true, IsActive: true, PriceCredits: 499},
	}}
	svc := NewCatalogService(repo, nil, 0, zerolog.Nop())

	freeViews, err := svc.ListServices(context.Background(), "", "free")
	if err != nil {
		t.Fatalf("ListServices(free) returned error: %v", err)
	}
	if len(freeViews) != 1 || freeViews[0].ID != "svc-free" {
		t.Errorf("type=free returned %v", freeViews)
	}

	premiumViews, err := svc.ListServices(context.Background(), "", "premium")
	if err != nil {
		t.Fatalf("ListServices(premium) returned error: %v", err)
	}
	if len(premiumViews) != 1 || premiumViews[0].Price != "$4.99" {
		t.Errorf("type=premium returned %v", premiumViews)
	}
}

// filteringServiceRepo honors the category/type arguments the way the
// SQL repository does.
type filteringServiceRepo struct {
	all []model.Service
}

func (f *filteringServiceRepo) ListActive(_ context.Context, category, serviceType string) ([]model.Service, error) {
	var out []model.Service
	for _, s := range f.all {
		if category != "" && s.Category != category {
			continue
		}
		if serviceType == "free" && s.IsPremium {
			continue
		}
		if serviceType == "premium" && !s.IsPremium {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *filteringServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	for i := range f.all {
		if f.all[i].ID == id {
			return &f.all[i], nil
		}
	}
	return nil, nil
}
