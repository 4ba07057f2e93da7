package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/infra"
	"tripmate/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Provide(utils.NewUUIDGenerator),
	fx.Invoke(prepareDatabase),
)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}

// prepareDatabase migrates the schema and loads seed data on boot. Seeding
// is idempotent: stores that already hold rows are left alone.
func prepareDatabase(db *gorm.DB, newID utils.IDGenerator) error {
	if err := infra.Migrate(db); err != nil {
		return err
	}
	return infra.SeedDefaultData(db, newID)
}
