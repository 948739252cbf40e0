// Package transaction defines how services group repository calls into
// one atomic unit of work.
package transaction

import "context"

// Transactor runs fn inside a transaction. Repositories called with the
// context passed to fn take part in it. The transaction commits when fn
// returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
