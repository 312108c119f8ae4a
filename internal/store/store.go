// Package store persists visitor records. Records are create-once: there is
// no update or delete path.
package store

import (
	"bitwise74/visitor-api/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var ErrIncompleteRecord = errors.New("visitor record has empty fields")

type VisitorStore interface {
	// Insert assigns the ID and, when unset, the timestamp before writing.
	Insert(ctx context.Context, v *model.Visitor) error

	// List returns every record, newest first.
	List(ctx context.Context) ([]model.Visitor, error)

	Close(ctx context.Context) error
}

// prepare fills the fields assigned at insertion time
func prepare(v *model.Visitor, now func() time.Time) error {
	if !v.Complete() {
		return ErrIncompleteRecord
	}

	if v.ID == "" {
		id, err := gonanoid.Generate(idCharset, 16)
		if err != nil {
			return fmt.Errorf("failed to generate visitor ID, %w", err)
		}

		v.ID = id
	}

	if v.Timestamp.IsZero() {
		v.Timestamp = now().UTC()
	}

	return nil
}
