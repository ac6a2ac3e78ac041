package usecase

import (
	"context"

	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; el repositorio que recibe
// fn queda atado a esa transacción. Si fn retorna error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(records repository.DailyDataRepository) error) error
}
