package storage

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rodrigo-brito/pricebot/model"
)

type SQL struct {
	lastSeq int64
	db      *gorm.DB
}

// FromSQLiteMemory 打开一个独立的 SQLite 内存数据库，每次调用得到不同的库。
func FromSQLiteMemory() (Storage, error) {
	dsn := fmt.Sprintf("file:pricebot-%s?mode=memory&cache=shared", uuid.NewString())
	return FromSQL(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (Storage, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 内存库只在连接存活期间存在，保持一个长期连接
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Duration(0))

	err = db.AutoMigrate(&model.Commodity{})
	if err != nil {
		return nil, err
	}

	return &SQL{
		db: db,
	}, nil
}

func (s *SQL) SaveCommodity(commodity *model.Commodity) error {
	var stored model.Commodity
	result := s.db.Where("id = ?", commodity.ID).First(&stored)
	switch {
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		commodity.Seq = atomic.AddInt64(&s.lastSeq, 1)
		return s.db.Create(commodity).Error
	case result.Error != nil:
		return result.Error
	}

	commodity.Seq = stored.Seq
	return s.db.Save(commodity).Error
}

func (s *SQL) Commodities(filters ...CommodityFilter) ([]*model.Commodity, error) {
	commodities := make([]*model.Commodity, 0)
	result := s.db.Order("seq").Find(&commodities)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	return lo.Filter(commodities, func(commodity *model.Commodity, _ int) bool {
		return matches(*commodity, filters)
	}), nil
}
