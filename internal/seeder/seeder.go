package seeder

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/database"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	configured bool
	db         *bun.DB
	logger     *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{configured: conns.Configured, db: conns.Writer, logger: logger}
}

// Orders seeds example orders if they are missing.
func (s *Seeder) Orders(ctx context.Context) error {
	if !s.configured {
		return errors.New("order store not configured")
	}

	samples := []entity.Order{
		{
			Name:        "Aung Kyaw",
			Phone:       "+66812345678",
			Address:     "24/8, Jelly Road, Mae Sot, Tak 63110",
			Qty:         1,
			PaymentType: entity.PaymentCOD,
			Country:     "TH",
		},
		{
			Name:        "Su Su Hlaing",
			Phone:       "+66897654321",
			Address:     "101 Sukhumvit Rd, Bangkok 10110",
			Qty:         2,
			PaymentType: entity.PaymentPrepaid,
			Notes:       "Please pack as gift",
			Country:     "TH",
		},
	}

	for _, sample := range samples {
		order := sample
		exists, err := s.db.NewSelect().Model((*entity.Order)(nil)).
			Where("name = ? AND phone = ?", order.Name, order.Phone).
			Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.db.NewInsert().Model(&order).
			ExcludeColumn("id", "date", "status").
			Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded orders", zap.Int("count", len(samples)))
	}
	return nil
}
