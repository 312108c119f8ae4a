package store

import (
	"bitwise74/visitor-api/internal/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SQL stores visitors through gorm (sqlite or postgres)
type SQL struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewSQL(db *gorm.DB) *SQL {
	return &SQL{DB: db, now: time.Now}
}

func (s *SQL) Insert(ctx context.Context, v *model.Visitor) error {
	if err := prepare(v, s.now); err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to insert visitor, %w", err)
	}

	return nil
}

func (s *SQL) List(ctx context.Context) ([]model.Visitor, error) {
	visitors := []model.Visitor{}

	err := s.DB.
		WithContext(ctx).
		Order("timestamp desc").
		Find(&visitors).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors, %w", err)
	}

	return visitors, nil
}

func (s *SQL) Close(context.Context) error {
	conn, err := s.DB.DB()
	if err != nil {
		return err
	}

	return conn.Close()
}
