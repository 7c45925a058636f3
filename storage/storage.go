package storage

import (
	"github.com/rodrigo-brito/pricebot/model"
)

// CommodityFilter 返回 false 的商品会被过滤掉
type CommodityFilter func(model.Commodity) bool

// Storage 保存启动时生成的商品价格。所有实现都只在内存中工作，进程重启后数据重新生成。
type Storage interface {
	SaveCommodity(commodity *model.Commodity) error                     // 写入商品，已存在时覆盖并保留原顺序
	Commodities(filters ...CommodityFilter) ([]*model.Commodity, error) // 按写入顺序返回商品
}

func WithID(ids ...string) CommodityFilter {
	return func(commodity model.Commodity) bool {
		for _, id := range ids {
			if id == commodity.ID {
				return true
			}
		}
		return false
	}
}

func WithCurrency(currency string) CommodityFilter {
	return func(commodity model.Commodity) bool {
		return commodity.Currency == currency
	}
}

func matches(commodity model.Commodity, filters []CommodityFilter) bool {
	for _, filter := range filters {
		if !filter(commodity) {
			return false
		}
	}
	return true
}
