package pricebot

import (
	"github.com/rodrigo-brito/pricebot/model"
)

// 常用类型的别名，调用方不需要直接引用 model 包
type (
	Settings            = model.Settings
	TelegramSettings    = model.TelegramSettings
	CommodityDefinition = model.CommodityDefinition
	Commodity           = model.Commodity
	PricePoint          = model.PricePoint
	Series              = model.Series[float64]
)
