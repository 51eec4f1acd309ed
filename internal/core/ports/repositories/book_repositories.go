package repositories

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
)

// BookReader loads account books together with their account trees.
type BookReader interface {
	// LoadBook returns the book with its root account and all descendants attached.
	LoadBook(ctx context.Context, bookID string) (*domain.Book, error)
}
