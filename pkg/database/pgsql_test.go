package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestNewPgxPool_BadURL(t *testing.T) {
	pool, err := NewPgxPool(context.Background(), "postgres://%zz", false)
	assert.ErrorContains(t, err, "failed to parse database config")
	assert.Nil(t, pool)
}

func TestClosePgxPool_Nil(t *testing.T) {
	assert.NotPanics(t, func() { ClosePgxPool(nil) })
}
