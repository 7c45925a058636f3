package catalog

import (
	"math/rand"
	"time"

	"github.com/rodrigo-brito/pricebot/model"
)

const (
	DefaultDays = 30
	// MaxDeviation 每天的价格在基准价 ±15% 内随机波动
	MaxDeviation = 0.15
)

// Generator 为商品生成过去 N 天的模拟价格。
type Generator struct {
	rng  *rand.Rand
	days int
	now  func() time.Time
}

type GeneratorOption func(*Generator)

func WithDays(days int) GeneratorOption {
	return func(g *Generator) {
		if days > 0 {
			g.days = days
		}
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator 创建生成器，rng 为空时使用当前时间作为种子。
func NewGenerator(rng *rand.Rand, options ...GeneratorOption) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	generator := &Generator{
		rng:  rng,
		days: DefaultDays,
		now:  time.Now,
	}
	for _, option := range options {
		option(generator)
	}
	return generator
}

func (g *Generator) Days() int {
	return g.days
}

// Series 生成以今天结束的连续 g.days 天价格，最后一天固定为基准价。
func (g *Generator) Series(basePrice float64) []model.PricePoint {
	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]model.PricePoint, g.days)
	for i := range points {
		deviation := (g.rng.Float64()*2 - 1) * MaxDeviation
		points[i] = model.PricePoint{
			Date:  today.AddDate(0, 0, i-(g.days-1)),
			Price: model.RoundPrice(basePrice * (1 + deviation)),
		}
	}

	// 确保最后一天的价格就是当前价格
	points[len(points)-1].Price = basePrice
	return points
}

// Commodity 根据定义生成一个商品。
func (g *Generator) Commodity(definition model.CommodityDefinition) *model.Commodity {
	points := g.Series(definition.BasePrice)
	return &model.Commodity{
		ID:       definition.ID,
		Name:     definition.Name,
		Unit:     definition.Unit,
		Currency: definition.Currency,
		Price:    model.Prices(points).Last(0),
		Prices:   points,
	}
}
