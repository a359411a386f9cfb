package wizard

import (
	"context"
	"errors"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// ErrStepLocked is returned when a step is entered before its predecessor
// has completed.
var ErrStepLocked = errors.New("wizard step locked")

// Step identifies one stage of the order confirmation flow.
type Step int

const (
	StepSelectTable Step = iota
	StepAuthenticateWaiter
	StepEnterCode
	StepConfirm
	StepDone
)

// Client is the backend surface the wizard drives. Implemented over the
// HTTP API by terminals and by stubs in tests.
type Client interface {
	Tables(ctx context.Context, restaurantID int64) ([]model.Table, error)
	AuthenticateWaiter(ctx context.Context, pinCode, password string, restaurantID int64) (*model.Waiter, string, error)
	OrderByCode(ctx context.Context, code string, restaurantID int64) (*model.Order, error)
	ConfirmOrderWithPin(ctx context.Context, restaurantID, orderID int64, pinCode string) (*model.Order, error)
}

// Wizard walks a terminal through table selection, waiter authentication,
// order lookup and confirmation. Steps unlock strictly in sequence; a
// failed step stays re-enterable.
type Wizard struct {
	client       Client
	restaurantID int64

	step   Step
	table  *model.Table
	waiter *model.Waiter
	token  string
	order  *model.Order
}

// New starts a wizard session for one restaurant.
func New(client Client, restaurantID int64) *Wizard {
	return &Wizard{client: client, restaurantID: restaurantID, step: StepSelectTable}
}

// Step reports the current stage.
func (w *Wizard) Step() Step { return w.step }

// Token returns the waiter token issued during authentication.
func (w *Wizard) Token() string { return w.token }

// Order returns the order loaded by EnterCode, confirmed after Confirm.
func (w *Wizard) Order() *model.Order { return w.order }

// SelectTable picks the table by its number from the live registry.
func (w *Wizard) SelectTable(ctx context.Context, number int) error {
	if w.step != StepSelectTable {
		return ErrStepLocked
	}

	tables, err := w.client.Tables(ctx, w.restaurantID)
	if err != nil {
		return err
	}
	for i := range tables {
		if tables[i].Number == number {
			w.table = &tables[i]
			w.step = StepAuthenticateWaiter
			return nil
		}
	}
	return errors.New("table not found")
}

// AuthenticateWaiter validates the waiter PIN and password and stores the
// issued token for the rest of the session.
func (w *Wizard) AuthenticateWaiter(ctx context.Context, pinCode, password string) error {
	if w.step != StepAuthenticateWaiter {
		return ErrStepLocked
	}

	waiter, token, err := w.client.AuthenticateWaiter(ctx, pinCode, password, w.restaurantID)
	if err != nil {
		return err
	}
	w.waiter = waiter
	w.token = token
	w.step = StepEnterCode
	return nil
}

// EnterCode loads the order behind the short code.
func (w *Wizard) EnterCode(ctx context.Context, code string) error {
	if w.step != StepEnterCode {
		return ErrStepLocked
	}

	order, err := w.client.OrderByCode(ctx, code, w.restaurantID)
	if err != nil {
		return err
	}
	w.order = order
	w.step = StepConfirm
	return nil
}

// Confirm re-validates the PIN against the loaded order and completes the
// flow. The confirmed order is available via Order.
func (w *Wizard) Confirm(ctx context.Context, pinCode string) (*model.Order, error) {
	if w.step != StepConfirm {
		return nil, ErrStepLocked
	}
	if w.order == nil {
		return nil, ErrStepLocked
	}

	confirmed, err := w.client.ConfirmOrderWithPin(ctx, w.restaurantID, w.order.ID, pinCode)
	if err != nil {
		return nil, err
	}
	w.order = confirmed
	w.step = StepDone
	return confirmed, nil
}
