package services

import (
	"context"

	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/repositories"
)

// Authorizer is the ownership gate. Every mutation on a store-scoped
// resource runs through AuthorizeStore before touching the database.
type Authorizer struct {
	storeRepo repositories.StoreRepositoryImpl
}

func NewAuthorizer(storeRepo repositories.StoreRepositoryImpl) *Authorizer {
	return &Authorizer{storeRepo: storeRepo}
}

// AuthorizeStore confirms the caller is authenticated and owns the
// store. Returns ErrUnauthenticated when userID is empty and
// ErrForbidden when the store does not exist under that owner; a
// missing store and a foreign store are not distinguished.
func (a *Authorizer) AuthorizeStore(ctx context.Context, userID, storeID string) (*models.Store, error) {
	if userID == "" {
		return nil, helpers.ErrUnauthenticated
	}

	store, err := a.storeRepo.GetByIDAndUser(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, helpers.ErrForbidden
	}
	return store, nil
}
