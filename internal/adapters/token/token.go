// Package token generates change tokens for copied file dependencies.
package token

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeTokenSource = (*Generator)(nil)

// Generator implements ports.ChangeTokenSource.
// Tokens have the form "<random uuid>-<unix millis>" and are never content derived.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a Generator using the given clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns a fresh change token.
func (g *Generator) Next() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", zerr.Wrap(err, "failed to generate change token")
	}
	return id.String() + "-" + strconv.FormatInt(g.now().UnixMilli(), 10), nil
}
