package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
)

// Generator produces string document ids.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID returns a random (v4) uuid.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
