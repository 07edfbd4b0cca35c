package main

import (
	"patrol/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.GuardModel{},
		model.CheckpointModel{},
		model.ScanModel{},
		model.AdminModel{},
		model.NotificationStateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
