package usecase

import (
	"context"
	"errors"
	"testing"

	"band-booking/internal/data/entity"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestGetCatalogFallsBackToDefaultPackages(t *testing.T) {
	repo := newTestRepository(nil, nil,
		&fakeInstrumentRepo{err: errors.New("db down")},
		&fakeServiceRepo{err: errors.New("db down")},
		&fakeBandPackageRepo{err: errors.New("db down")},
		nil, nil)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	catalog, err := svc.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("GetCatalog() error = %v, want graceful degradation", err)
	}

	if len(catalog.Packages) == 0 {
		t.Error("expected the default package tiers when the database is down")
	}
	if len(catalog.Services) != 0 {
		t.Errorf("got %d services, want an empty list on load failure", len(catalog.Services))
	}
	if len(catalog.Instruments) != 0 {
		t.Errorf("got %d instruments, want an empty list on load failure", len(catalog.Instruments))
	}
}

func TestGetCatalogFiltersUnrentableInstruments(t *testing.T) {
	instruments := &fakeInstrumentRepo{instruments: []*entity.Instrument{
		{Name: "Trumpet", PricePerDay: decimal.NewFromInt(300), AvailableQuantity: 2},
		{Name: "Dented Tuba", PricePerDay: decimal.NewFromInt(800), AvailableQuantity: 0},
		{Name: "Retired Flute", PricePerDay: decimal.NewFromInt(200), AvailableQuantity: 1, IsArchived: true},
	}}
	repo := newTestRepository(nil, nil, instruments, nil, nil, nil, nil)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	catalog, err := svc.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("GetCatalog() error = %v", err)
	}

	if len(catalog.Instruments) != 1 || catalog.Instruments[0].Name != "Trumpet" {
		t.Errorf("instruments = %+v, want only the rentable Trumpet", catalog.Instruments)
	}
}

func TestPriceCatalogMapsRates(t *testing.T) {
	packages := &fakeBandPackageRepo{packages: []*entity.BandPackage{
		{Key: "standard", Price: decimal.NewFromInt(20000), Active: true},
		{Key: "legacy", Price: decimal.NewFromInt(9000), Active: false},
	}}
	repo := newTestRepository(nil, nil, nil, nil, packages, nil, nil)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	catalog := svc.PriceCatalog(context.Background())

	if price, ok := catalog.PackagePrices["standard"]; !ok || !price.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("standard price = %v (present=%v), want 20000", price, ok)
	}
	if _, ok := catalog.PackagePrices["legacy"]; ok {
		t.Error("inactive packages must not be priced")
	}
}
