package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

var (
	ErrInvalidDefinition = errors.New("invalid commodity definition")
)

type TelegramSettings struct {
	Enabled bool   // 是否启用Telegram查询入口
	Token   string // Telegram bot的Token
	Users   []int  // 允许查询的用户ID列表
}

type Settings struct {
	Days     int              // 每个商品生成的历史天数，默认30天
	Seed     int64            // 随机种子，0表示使用当前时间
	Telegram TelegramSettings // Telegram设置
}

// CommodityDefinition 描述目录中的一个商品，启动时由生成器转换为 Commodity。
type CommodityDefinition struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Unit      string   `yaml:"unit"`
	Currency  string   `yaml:"currency"`
	BasePrice float64  `yaml:"base_price"`
	Aliases   []string `yaml:"aliases"`
}

func (d CommodityDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}
	if d.BasePrice < 0 || math.IsNaN(d.BasePrice) || math.IsInf(d.BasePrice, 0) {
		return fmt.Errorf("%w: %s has invalid base price %v", ErrInvalidDefinition, d.ID, d.BasePrice)
	}
	return nil
}

type PricePoint struct {
	Date  time.Time `json:"date"`  // 日期（按天）
	Price float64   `json:"price"` // 当天价格，保留一位小数
}

func (p PricePoint) Day() string {
	return p.Date.Format("2006-01-02")
}

// Commodity 在启动后只读，不要修改其字段。
type Commodity struct {
	ID       string       `json:"id" gorm:"primaryKey"`
	Seq      int64        `json:"seq" gorm:"index"` // 写入顺序，保证目录按插入顺序遍历
	Name     string       `json:"name"`
	Unit     string       `json:"unit"`
	Currency string       `json:"currency"`
	Price    float64      `json:"price"` // 当前价格，等于最后一个价格点
	Prices   []PricePoint `json:"prices" gorm:"serializer:json"`
}

func (c Commodity) String() string {
	return fmt.Sprintf("%s (%s) %s %s/%s", c.Name, c.ID, strconv.FormatFloat(c.Price, 'f', 1, 64),
		c.Currency, c.Unit)
}

// Values 返回价格序列。
func (c Commodity) Values() Series[float64] {
	values := make(Series[float64], len(c.Prices))
	for i, point := range c.Prices {
		values[i] = point.Price
	}
	return values
}

// Window 返回最近 days 天的价格点，days 超出范围时返回全部。
func (c Commodity) Window(days int) []PricePoint {
	if days <= 0 || days >= len(c.Prices) {
		return c.Prices
	}
	return c.Prices[len(c.Prices)-days:]
}

func Dates(points []PricePoint) []string {
	dates := make([]string, len(points))
	for i, point := range points {
		dates[i] = point.Day()
	}
	return dates
}

func Prices(points []PricePoint) Series[float64] {
	prices := make(Series[float64], len(points))
	for i, point := range points {
		prices[i] = point.Price
	}
	return prices
}

// RoundPrice 四舍五入到一位小数
func RoundPrice(value float64) float64 {
	return math.Round(value*10) / 10
}
