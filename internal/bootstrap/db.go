package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/avagut/authhub/cmd/flags"
	"github.com/avagut/authhub/internal/conf"
	"github.com/avagut/authhub/internal/db"
	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDatabase(_ context.Context) error {
	dialector, err := newDialector()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	d, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %s", err.Error())
	}
	sqlDB, err := d.DB()
	if err != nil {
		log.Fatalf("failed to get database: %s", err.Error())
	}
	sqlDB.SetMaxIdleConns(conf.Conf.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(conf.Conf.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Second * time.Duration(conf.Conf.Database.ConnMaxLifetime))
	return db.Init(d)
}

func newDialector() (gorm.Dialector, error) {
	dbConf := conf.Conf.Database
	switch dbConf.Type {
	case conf.DatabaseTypeMysql:
		var dsn string
		if dbConf.Port == 0 {
			dsn = fmt.Sprintf("%s:%s@unix(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&tls=%s",
				dbConf.User,
				dbConf.Password,
				dbConf.Host,
				dbConf.DBName,
				dbConf.SslMode,
			)
			log.Infof("mysql database unix socket: %s", dbConf.Host)
		} else {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&tls=%s",
				dbConf.User,
				dbConf.Password,
				dbConf.Host,
				dbConf.Port,
				dbConf.DBName,
				dbConf.SslMode,
			)
			log.Infof("mysql database tcp: %s:%d", dbConf.Host, dbConf.Port)
		}
		return mysql.New(mysql.Config{DSN: dsn}), nil
	case conf.DatabaseTypeSqlite3:
		var dsn string
		if dbConf.DBName == "memory" || strings.HasPrefix(dbConf.DBName, ":memory:") {
			dsn = "file::memory:?cache=shared"
			log.Infof("sqlite3 database memory")
		} else {
			dbName := dbConf.DBName
			if !strings.HasSuffix(dbName, ".db") {
				dbName += ".db"
			}
			if !filepath.IsAbs(dbName) {
				dbName = filepath.Join(flags.DataDir, dbName)
			}
			dsn = fmt.Sprintf("%s?_journal_mode=WAL&_vacuum=incremental", dbName)
			log.Infof("sqlite3 database file: %s", dbName)
		}
		return sqlite.Open(dsn), nil
	case conf.DatabaseTypePostgres:
		var dsn string
		if dbConf.Port == 0 {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
				dbConf.Host,
				dbConf.User,
				dbConf.Password,
				dbConf.DBName,
				dbConf.SslMode,
			)
			log.Infof("postgres database unix socket: %s", dbConf.Host)
		} else {
			dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dbConf.Host,
				dbConf.Port,
				dbConf.User,
				dbConf.Password,
				dbConf.DBName,
				dbConf.SslMode,
			)
			log.Infof("postgres database tcp: %s:%d", dbConf.Host, dbConf.Port)
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database type: %s", dbConf.Type)
	}
}
