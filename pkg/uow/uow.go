// Package uow declares the unit-of-work collaborator interface consumed by
// application services. Implementations live with the persistence layer of
// the consuming codebase; this library only fixes the contract.
package uow

import "context"

// UnitOfWork flushes pending domain mutations atomically and reports the
// number of affected entities.
type UnitOfWork interface {
	Save(ctx context.Context) (int, error)
}
