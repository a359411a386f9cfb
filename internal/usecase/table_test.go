package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	testhelpers "github.com/vmesquit/mesapos/internal/test"
)

func newTableRepo() *testhelpers.TableRepositoryStub {
	return &testhelpers.TableRepositoryStub{Tables: []model.Table{
		{ID: 1, RestaurantID: 1, Number: 1, Status: model.TableStatusOccupied, Consumption: 120},
		{ID: 2, RestaurantID: 1, Number: 2, Status: model.TableStatusFree},
	}}
}

func TestTableListByRestaurant(t *testing.T) {
	uc := NewTableUseCase(newTableRepo(), newWaiterRepo(), testhelpers.HasherStub{})

	tables, err := uc.ListByRestaurant(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
}

func TestTableReleaseDelegates(t *testing.T) {
	tables := newTableRepo()
	uc := NewTableUseCase(tables, newWaiterRepo(), testhelpers.HasherStub{})

	if err := uc.Release(context.Background(), 1, 1); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if len(tables.Released) != 1 || tables.Released[0] != 1 {
		t.Fatalf("release not delegated: %+v", tables.Released)
	}
}

func TestTableReleaseConflictSurfaces(t *testing.T) {
	tables := newTableRepo()
	tables.ReleaseFn = func(context.Context, int64) error { return domainErrors.ErrConflict }
	uc := NewTableUseCase(tables, newWaiterRepo(), testhelpers.HasherStub{})

	if err := uc.Release(context.Background(), 1, 1); err != domainErrors.ErrConflict {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTableReleaseForeignRestaurant(t *testing.T) {
	tables := newTableRepo()
	uc := NewTableUseCase(tables, newWaiterRepo(), testhelpers.HasherStub{})

	if err := uc.Release(context.Background(), 2, 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign table, got %v", err)
	}
	if len(tables.Released) != 0 {
		t.Fatalf("foreign table must not be released: %+v", tables.Released)
	}
}

func TestTableReleaseUnknownTable(t *testing.T) {
	uc := NewTableUseCase(newTableRepo(), newWaiterRepo(), testhelpers.HasherStub{})

	if err := uc.Release(context.Background(), 1, 99); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTableTransferSuccess(t *testing.T) {
	tables := newTableRepo()
	uc := NewTableUseCase(tables, newWaiterRepo(), testhelpers.HasherStub{})

	err := uc.Transfer(context.Background(), TransferInput{
		RestaurantID:           1,
		SourceTableNumber:      1,
		DestinationTableNumber: 2,
		WaiterCode:             "1234",
		WaiterPassword:         "secret",
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if len(tables.Transfers) != 1 {
		t.Fatalf("expected one transfer call")
	}
	call := tables.Transfers[0]
	if call.SourceNumber != 1 || call.DestinationNumber != 2 {
		t.Fatalf("unexpected transfer call %+v", call)
	}
}

func TestTableTransferSameTable(t *testing.T) {
	uc := NewTableUseCase(newTableRepo(), newWaiterRepo(), testhelpers.HasherStub{})

	err := uc.Transfer(context.Background(), TransferInput{
		RestaurantID:           1,
		SourceTableNumber:      3,
		DestinationTableNumber: 3,
		WaiterCode:             "1234",
		WaiterPassword:         "secret",
	})
	if err != domainErrors.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTableTransferBadCredentials(t *testing.T) {
	tables := newTableRepo()
	uc := NewTableUseCase(tables, newWaiterRepo(), testhelpers.HasherStub{})
	ctx := context.Background()

	inputs := []TransferInput{
		{RestaurantID: 1, SourceTableNumber: 1, DestinationTableNumber: 2, WaiterCode: "", WaiterPassword: "secret"},
		{RestaurantID: 1, SourceTableNumber: 1, DestinationTableNumber: 2, WaiterCode: "1234", WaiterPassword: ""},
		{RestaurantID: 1, SourceTableNumber: 1, DestinationTableNumber: 2, WaiterCode: "9999", WaiterPassword: "secret"},
		{RestaurantID: 1, SourceTableNumber: 1, DestinationTableNumber: 2, WaiterCode: "1234", WaiterPassword: "wrong"},
	}
	for i, input := range inputs {
		if err := uc.Transfer(ctx, input); err != domainErrors.ErrInvalidCredentials {
			t.Fatalf("case %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
	if len(tables.Transfers) != 0 {
		t.Fatalf("transfer must not run with bad credentials")
	}
}
