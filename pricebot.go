package pricebot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rodrigo-brito/pricebot/catalog"
	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/notification"
	"github.com/rodrigo-brito/pricebot/report"
	"github.com/rodrigo-brito/pricebot/service"
	"github.com/rodrigo-brito/pricebot/storage"
	"github.com/rodrigo-brito/pricebot/tools/log"
)

// MaxDays 报告和比较最多覆盖 30 天
const MaxDays = 30

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
}

// PriceBot 持有启动时生成的商品目录，之后所有查询都只读目录，可以被多个协程同时调用。
type PriceBot struct {
	storage     storage.Storage
	settings    model.Settings
	definitions []model.CommodityDefinition
	rng         *rand.Rand
	now         func() time.Time

	notifier service.Notifier
	telegram service.Telegram

	catalog *catalog.Catalog
}

type Option func(*PriceBot)

func NewBot(settings model.Settings, options ...Option) (*PriceBot, error) {
	bot := &PriceBot{
		settings:    settings,
		definitions: catalog.DefaultDefinitions(),
		now:         time.Now,
	}

	for _, option := range options {
		option(bot)
	}

	var err error
	if bot.storage == nil {
		bot.storage, err = storage.FromMemory()
		if err != nil {
			return nil, err
		}
	}

	if bot.rng == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = bot.now().UnixNano()
		}
		bot.rng = rand.New(rand.NewSource(seed))
	}

	generator := catalog.NewGenerator(bot.rng, catalog.WithDays(settings.Days), catalog.WithClock(bot.now))
	if err := catalog.Seed(bot.storage, generator, bot.definitions...); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	aliases, err := catalog.Aliases(bot.definitions...)
	if err != nil {
		return nil, fmt.Errorf("alias table: %w", err)
	}

	bot.catalog, err = catalog.Load(bot.storage, aliases)
	if err != nil {
		return nil, err
	}
	log.Infof("catalog loaded with %d commodities", bot.catalog.Len())

	if settings.Telegram.Enabled {
		bot.telegram, err = notification.NewTelegram(bot, settings)
		if err != nil {
			return nil, err
		}
		WithNotifier(bot.telegram)(bot)
	}

	return bot, nil
}

func WithStorage(storage storage.Storage) Option {
	return func(bot *PriceBot) {
		bot.storage = storage
	}
}

// WithRand 指定生成价格序列的随机源，优先于 Settings.Seed
func WithRand(rng *rand.Rand) Option {
	return func(bot *PriceBot) {
		bot.rng = rng
	}
}

func WithClock(now func() time.Time) Option {
	return func(bot *PriceBot) {
		bot.now = now
	}
}

// WithDefinitions 替换默认的商品目录
func WithDefinitions(definitions ...model.CommodityDefinition) Option {
	return func(bot *PriceBot) {
		bot.definitions = definitions
	}
}

func WithLogLevel(level log.Level) Option {
	return func(bot *PriceBot) {
		log.SetLevel(level)
	}
}

func WithNotifier(notifier service.Notifier) Option {
	return func(bot *PriceBot) {
		bot.notifier = notifier
	}
}

// Run 启动 Telegram 查询入口并阻塞直到 ctx 结束。
func (b *PriceBot) Run(ctx context.Context) error {
	if b.telegram != nil {
		b.telegram.Start()
	}

	if b.notifier != nil {
		b.notifier.Notify(fmt.Sprintf("Price bot ready, %d commodities available.", b.catalog.Len()))
	}

	<-ctx.Done()
	return nil
}

func (b *PriceBot) Catalog() *catalog.Catalog {
	return b.catalog
}

func (b *PriceBot) query(op string, names ...string) *log.Entry {
	return log.WithFields(log.Fields{
		"query_id": uuid.NewString(),
		"op":       op,
		"name":     strings.Join(names, ","),
	})
}

// normalizeDays days <= 0 时使用 30，最大不超过 30
func normalizeDays(days int) int {
	if days <= 0 || days > MaxDays {
		return MaxDays
	}
	return days
}

func (b *PriceBot) Lookup(name string) (string, bool) {
	return b.catalog.Lookup(name)
}

// resolve 解析所有名称，返回解析到的商品以及无法解析的名称
func (b *PriceBot) resolve(names ...string) ([]*model.Commodity, []string) {
	var (
		commodities []*model.Commodity
		missing     []string
	)
	for _, name := range names {
		id, ok := b.catalog.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		commodity, _ := b.catalog.Get(id)
		commodities = append(commodities, commodity)
	}
	return commodities, missing
}

func (b *PriceBot) CommodityInfo(name string) string {
	entry := b.query("info", name)
	commodities, missing := b.resolve(name)
	if len(missing) > 0 {
		entry.Debug("not found")
		return report.NotFound(missing, b.catalog.Commodities())
	}

	entry.Debug("query")
	return report.Info(commodities[0])
}

func (b *PriceBot) PriceReport(name string, days int) string {
	days = normalizeDays(days)
	entry := b.query("report", name).WithField("days", days)
	commodities, missing := b.resolve(name)
	if len(missing) > 0 {
		entry.Debug("not found")
		return report.NotFound(missing, b.catalog.Commodities())
	}

	entry.Debug("query")
	return report.PriceReport(commodities[0], days)
}

// Compare 两个名称都能解析时才进行比较，否则一次性列出所有无法解析的名称。
func (b *PriceBot) Compare(first, second string, days int) string {
	days = normalizeDays(days)
	entry := b.query("compare", first, second).WithField("days", days)
	commodities, missing := b.resolve(first, second)
	if len(missing) > 0 {
		entry.WithField("missing", strings.Join(missing, ",")).Debug("not found")
		return report.NotFound(missing, b.catalog.Commodities())
	}

	entry.Debug("query")
	return report.Comparison(commodities[0], commodities[1], days)
}

func (b *PriceBot) AnalyzeTrend(name string) string {
	entry := b.query("trend", name)
	commodities, missing := b.resolve(name)
	if len(missing) > 0 {
		entry.Debug("not found")
		return report.NotFound(missing, b.catalog.Commodities())
	}

	entry.Debug("query")
	// 每次查询使用独立的固定种子随机源，并发查询之间不共享状态
	return report.Trend(commodities[0], nil)
}

func (b *PriceBot) ListCatalog() string {
	b.query("list").Debug("query")
	return report.Catalog(b.catalog.Commodities(), b.catalog.Aliases)
}
