package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewRegistryRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewRegistryRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewItineraryRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewItineraryRepository(pool)
	assert.NotNil(t, repo)
}
