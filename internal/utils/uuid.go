package utils

import "github.com/google/uuid"

// UUIDGenerator produces run identifiers. Version 7 ids sort by creation
// time, which keeps journal rows and log lines in run order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID, falling back to v4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
