package storage

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hromada/hromada-api/internal/domain"
)

// GormStore implements domain.Repository on top of GORM. SQLite is the
// default driver; the DSN comes from config.
type GormStore struct {
	db *gorm.DB
}

var _ domain.Repository = (*GormStore)(nil)

func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.ProjectSubmission{},
		&domain.Project{},
		&domain.DonationRecord{},
		&domain.WireTransferRecord{},
		&domain.User{},
		&domain.ContactSubmission{},
		&domain.Subscriber{},
	)
	if err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
