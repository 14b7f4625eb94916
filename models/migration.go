package models

import (
	"log"

	"github.com/mmdatafocus/hatchery_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&EggCollection{}, &EggSetting{},
		&Incubator{}, &IncubationBatch{},
		&FertileEggCandling{}, &ClearEggCandling{},
		&LockdownBatch{},
		&HatchingRecord{}, &PackagingBatch{},
		&SaleRecord{},
		&Alert{},
		&Notification{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
