package service

import (
	"context"

	"directorio/internal/domain/entity"
)

// Assistant answers chat messages with the help of a language model.
type Assistant interface {
	// Answer replies to message given the businesses that matched it.
	Answer(ctx context.Context, message string, businesses []*entity.Business) (string, error)
}
