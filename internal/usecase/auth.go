package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	pkgAuth "github.com/vmesquit/mesapos/internal/pkg/auth"
)

// AuthUseCase authenticates waiters and restaurant accounts and manages tokens.
type AuthUseCase struct {
	waiters     repository.WaiterRepository
	restaurants repository.RestaurantRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(waiters repository.WaiterRepository, restaurants repository.RestaurantRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{waiters: waiters, restaurants: restaurants, hasher: hasher, tokens: strategy}
}

// AuthenticateWaiter validates a PIN/password pair scoped to a restaurant and
// issues a waiter token. A PIN unknown to the restaurant is ErrNotFound; a
// known PIN with a wrong password is ErrInvalidCredentials.
func (u *AuthUseCase) AuthenticateWaiter(ctx context.Context, pinCode, password string, restaurantID int64) (*model.Waiter, string, error) {
	pinCode = strings.TrimSpace(pinCode)
	if pinCode == "" || password == "" || restaurantID == 0 {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	waiter, err := u.waiters.GetByPin(ctx, restaurantID, pinCode)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrNotFound
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(waiter.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{
		SubjectID:    waiter.ID,
		RestaurantID: waiter.RestaurantID,
		Role:         pkgAuth.RoleWaiter,
	})
	if err != nil {
		return nil, "", err
	}

	return waiter, token, nil
}

// LoginRestaurant validates restaurant staff credentials and issues a
// management token.
func (u *AuthUseCase) LoginRestaurant(ctx context.Context, email, password string) (*model.Restaurant, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	restaurant, err := u.restaurants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(restaurant.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{
		SubjectID:    restaurant.ID,
		RestaurantID: restaurant.ID,
		Role:         pkgAuth.RoleRestaurant,
	})
	if err != nil {
		return nil, "", err
	}

	return restaurant, token, nil
}

// ParseToken validates a bearer token and returns its claims.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
