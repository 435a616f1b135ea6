package db

import (
	"vidtube.com/cmd/model"
	"vidtube.com/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init opens the MySQL connection described by config.ConfigInfo.Mysql and
// migrates every table.
func Init() *Store {
	var err error
	DB, err = gorm.Open(mysql.Open(config.ConfigInfo.Mysql.DSN()),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}
	if err = migrate(DB); err != nil {
		panic(err)
	}
	return NewStore(DB)
}

func migrate(db *gorm.DB) error {
	hlog.Info("Starting table migration...")
	if err := db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Post{},
	); err != nil {
		hlog.Errorf("Failed to migrate tables: %v", err)
		return err
	}
	hlog.Info("Table migration completed successfully")
	return nil
}
