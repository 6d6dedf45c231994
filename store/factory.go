package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"propkit/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New selects a backend from the DSN:
//
//	""                          in-memory store
//	redis:// or rediss://       redis store
//	*.json, *.yaml, *.yml       file store
//	anything else               relational store (postgres, mysql or sqlite)
//
// Relational DSNs follow the usual conventions: postgres URLs or keyword
// DSNs, mysql @tcp(...) addresses, and any remaining value is treated as a
// sqlite database path.
func New(dsn string) (Store, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		logrus.Debug("using in-memory settings store")
		return NewMemoryStore(), nil
	case strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://"):
		return NewRedisStore(dsn)
	case hasSettingsFileExt(dsn):
		logrus.WithField("path", dsn).Debug("using file settings store")
		return NewFileStore(dsn)
	default:
		db, err := openDatabase(dsn)
		if err != nil {
			return nil, err
		}
		logrus.Debug("using database settings store")
		return NewGormStore(db)
	}
}

func hasSettingsFileExt(dsn string) bool {
	switch strings.ToLower(filepath.Ext(dsn)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func openDatabase(dsn string) (*gorm.DB, error) {
	var newLogger logger.Interface
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		// Route GORM logs through the logrus output so they land wherever
		// the application sends its logs
		newLogger = logger.New(
			log.New(logrus.StandardLogger().Out, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)
	}

	// Detect driver types once and reuse
	isPostgres := strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		(strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname="))
	isMySQL := strings.Contains(dsn, "@tcp(") || strings.Contains(dsn, "@unix(")

	var dialector gorm.Dialector
	if isPostgres {
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	} else if isMySQL {
		if !strings.Contains(dsn, "parseTime") {
			if strings.Contains(dsn, "?") {
				dsn += "&parseTime=true"
			} else {
				dsn += "?parseTime=true"
			}
		}
		dialector = mysql.Open(dsn)
	} else {
		// Create directory only for plain filesystem paths. SQLite file: URIs
		// handle their own path parsing, so skip mkdir for those.
		if !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		// WAL mode and NORMAL synchronous keep writes fast while staying
		// safe; cache and temp storage remain tunable via env vars
		cacheSize := utils.GetEnvOrDefault("SQLITE_CACHE_SIZE", "10000")
		tempStore := utils.GetEnvOrDefault("SQLITE_TEMP_STORE", "MEMORY")
		params := fmt.Sprintf("_pragma=foreign_keys(1)&_busy_timeout=10000&_journal_mode=WAL&_synchronous=NORMAL&_cache_size=%s&_temp_store=%s", cacheSize, tempStore)
		delimiter := "?"
		if strings.Contains(dsn, "?") {
			delimiter = "&"
		}
		dialector = sqlite.Open(dsn + delimiter + params)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if isPostgres || isMySQL {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite needs limited connections to avoid locking issues
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}
