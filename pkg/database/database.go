package database

import (
	"errors"
	"fmt"
	"log"

	"encanto_backend/internal/config"
	"encanto_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.AccessKey{},
		&model.Lesson{},
		&model.UserProgress{},
		&model.SiteConfig{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// SeedBootstrapKey guarantees the protected admin key row exists and is
// usable. The row is re-activated and promoted if someone has tampered with
// it directly in the database.
func SeedBootstrapKey(db *gorm.DB, bootstrapKey string) error {
	if bootstrapKey == "" {
		return errors.New("bootstrap admin key must not be empty")
	}

	var existing model.AccessKey
	err := db.Where("`key` = ?", bootstrapKey).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&model.AccessKey{
			Key:       bootstrapKey,
			OwnerName: "Administrador",
			IsAdmin:   true,
			IsActive:  true,
		}).Error
	}
	if err != nil {
		return err
	}

	if !existing.IsAdmin || !existing.IsActive {
		return db.Model(&existing).Updates(map[string]interface{}{
			"is_admin":  true,
			"is_active": true,
		}).Error
	}
	return nil
}
