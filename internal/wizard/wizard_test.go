package wizard

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

type clientStub struct {
	tables     []model.Table
	tablesErr  error
	authErr    error
	order      *model.Order
	orderErr   error
	confirm    *model.Order
	confirmErr error
}

func (s *clientStub) Tables(ctx context.Context, restaurantID int64) ([]model.Table, error) {
	return s.tables, s.tablesErr
}

func (s *clientStub) AuthenticateWaiter(ctx context.Context, pinCode, password string, restaurantID int64) (*model.Waiter, string, error) {
	if s.authErr != nil {
		return nil, "", s.authErr
	}
	return &model.Waiter{ID: 7, RestaurantID: restaurantID}, "token", nil
}

func (s *clientStub) OrderByCode(ctx context.Context, code string, restaurantID int64) (*model.Order, error) {
	return s.order, s.orderErr
}

func (s *clientStub) ConfirmOrderWithPin(ctx context.Context, restaurantID, orderID int64, pinCode string) (*model.Order, error) {
	return s.confirm, s.confirmErr
}

func newClientStub() *clientStub {
	return &clientStub{
		tables:  []model.Table{{ID: 1, RestaurantID: 1, Number: 4, Status: model.TableStatusFree}},
		order:   &model.Order{ID: 10, RestaurantID: 1, Code: "AB23CD", Status: model.OrderStatusWaiting},
		confirm: &model.Order{ID: 10, RestaurantID: 1, Code: "AB23CD", Status: model.OrderStatusPreparing},
	}
}

func TestWizardHappyPath(t *testing.T) {
	w := New(newClientStub(), 1)
	ctx := context.Background()

	if err := w.SelectTable(ctx, 4); err != nil {
		t.Fatalf("select table failed: %v", err)
	}
	if err := w.AuthenticateWaiter(ctx, "1234", "secret"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if w.Token() != "token" {
		t.Fatalf("token not stored")
	}
	if err := w.EnterCode(ctx, "AB23CD"); err != nil {
		t.Fatalf("enter code failed: %v", err)
	}
	order, err := w.Confirm(ctx, "1234")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if order.Status != model.OrderStatusPreparing {
		t.Fatalf("expected PREPARING order, got %s", order.Status)
	}
	if w.Step() != StepDone {
		t.Fatalf("expected StepDone, got %v", w.Step())
	}
}

func TestWizardStepsLockedUntilPredecessor(t *testing.T) {
	w := New(newClientStub(), 1)
	ctx := context.Background()

	if err := w.AuthenticateWaiter(ctx, "1234", "secret"); err != ErrStepLocked {
		t.Fatalf("expected ErrStepLocked, got %v", err)
	}
	if err := w.EnterCode(ctx, "AB23CD"); err != ErrStepLocked {
		t.Fatalf("expected ErrStepLocked, got %v", err)
	}
	if _, err := w.Confirm(ctx, "1234"); err != ErrStepLocked {
		t.Fatalf("expected ErrStepLocked, got %v", err)
	}
}

func TestWizardFailedStepStaysReEnterable(t *testing.T) {
	client := newClientStub()
	client.authErr = domainErrors.ErrInvalidCredentials
	w := New(client, 1)
	ctx := context.Background()

	if err := w.SelectTable(ctx, 4); err != nil {
		t.Fatalf("select table failed: %v", err)
	}
	if err := w.AuthenticateWaiter(ctx, "1234", "wrong"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected credential error, got %v", err)
	}
	if w.Step() != StepAuthenticateWaiter {
		t.Fatalf("failed step must stay current, got %v", w.Step())
	}

	client.authErr = nil
	if err := w.AuthenticateWaiter(ctx, "1234", "secret"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if w.Step() != StepEnterCode {
		t.Fatalf("expected StepEnterCode after retry, got %v", w.Step())
	}
}

func TestWizardUnknownTable(t *testing.T) {
	w := New(newClientStub(), 1)

	if err := w.SelectTable(context.Background(), 99); err == nil {
		t.Fatalf("expected error for unknown table")
	}
	if w.Step() != StepSelectTable {
		t.Fatalf("step must not advance on failure")
	}
}

func TestWizardConfirmFailureKeepsStep(t *testing.T) {
	client := newClientStub()
	client.confirmErr = errors.New("pin rejected")
	w := New(client, 1)
	ctx := context.Background()

	if err := w.SelectTable(ctx, 4); err != nil {
		t.Fatalf("select table failed: %v", err)
	}
	if err := w.AuthenticateWaiter(ctx, "1234", "secret"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if err := w.EnterCode(ctx, "AB23CD"); err != nil {
		t.Fatalf("enter code failed: %v", err)
	}
	if _, err := w.Confirm(ctx, "0000"); err == nil {
		t.Fatalf("expected confirm failure")
	}
	if w.Step() != StepConfirm {
		t.Fatalf("confirm must stay re-enterable, got %v", w.Step())
	}
}
