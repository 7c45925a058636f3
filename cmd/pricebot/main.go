package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/xhit/go-str2duration/v2"

	"github.com/rodrigo-brito/pricebot"
	"github.com/rodrigo-brito/pricebot/catalog"
	"github.com/rodrigo-brito/pricebot/config"
	"github.com/rodrigo-brito/pricebot/storage"
	"github.com/rodrigo-brito/pricebot/tools/log"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

var windowFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "days",
		Aliases: []string{"d"},
		Usage:   "eg. 14 (default 30 days, max 30)",
	},
	&cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "eg. 2w, 10d (overrides --days)",
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "pricebot",
		HelpName: "pricebot",
		Usage:    "Commodity price reports and comparisons",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "eg. ./catalog.yml (default built-in catalog)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed for the generated prices (default current time)",
			},
			&cli.StringFlag{
				Name:  "storage",
				Usage: "memory or sql",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logs",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List supported commodities",
				Action: func(c *cli.Context) error {
					bot, err := newBot(c)
					if err != nil {
						return err
					}
					return write(c, bot.ListCatalog())
				},
			},
			{
				Name:      "info",
				Usage:     "Price overview of a commodity",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: info <name>")
					}
					bot, err := newBot(c)
					if err != nil {
						return err
					}
					return write(c, bot.CommodityInfo(c.Args().First()))
				},
			},
			{
				Name:      "report",
				Usage:     "Price report of the last days",
				ArgsUsage: "<name>",
				Flags:     windowFlags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: report <name> [--days N | --period 2w]")
					}
					days, err := windowDays(c)
					if err != nil {
						return err
					}
					bot, err := newBot(c)
					if err != nil {
						return err
					}
					return write(c, bot.PriceReport(c.Args().First(), days))
				},
			},
			{
				Name:      "compare",
				Usage:     "Compare two commodities",
				ArgsUsage: "<first> <second>",
				Flags:     windowFlags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("usage: compare <first> <second> [--days N | --period 2w]")
					}
					days, err := windowDays(c)
					if err != nil {
						return err
					}
					bot, err := newBot(c)
					if err != nil {
						return err
					}
					return write(c, bot.Compare(c.Args().Get(0), c.Args().Get(1), days))
				},
			},
			{
				Name:      "trend",
				Usage:     "Trend analysis of the full history",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: trend <name>")
					}
					bot, err := newBot(c)
					if err != nil {
						return err
					}
					return write(c, bot.AnalyzeTrend(c.Args().First()))
				},
			},
			{
				Name:  "telegram",
				Usage: "Serve queries through Telegram (PRICEBOT_TELEGRAM_TOKEN, PRICEBOT_TELEGRAM_USERS)",
				Action: func(c *cli.Context) error {
					bot, err := newBot(c)
					if err != nil {
						return err
					}

					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()
					return bot.Run(ctx)
				},
			},
		},
	}
}

// newBot 环境变量提供默认配置，命令行参数优先
func newBot(c *cli.Context) (*pricebot.PriceBot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("storage") {
		cfg.Storage = c.String("storage")
	}
	if c.IsSet("catalog") {
		cfg.Catalog = c.String("catalog")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	settings := cfg.Settings()
	if c.Command.Name != "telegram" {
		settings.Telegram.Enabled = false
	} else if !settings.Telegram.Enabled {
		return nil, fmt.Errorf("PRICEBOT_TELEGRAM_TOKEN is required")
	}

	level := cfg.Level()
	if c.Bool("debug") {
		level = log.DebugLevel
	}
	options := []pricebot.Option{pricebot.WithLogLevel(level)}

	if cfg.Catalog != "" {
		definitions, err := catalog.LoadDefinitions(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		options = append(options, pricebot.WithDefinitions(definitions...))
	}

	if cfg.Storage == config.StorageSQL {
		store, err := storage.FromSQLiteMemory()
		if err != nil {
			return nil, err
		}
		options = append(options, pricebot.WithStorage(store))
	}

	return pricebot.NewBot(settings, options...)
}

// windowDays --period 优先于 --days，不足一天的部分舍去
func windowDays(c *cli.Context) (int, error) {
	period := c.String("period")
	if period == "" {
		return c.Int("days"), nil
	}

	duration, err := str2duration.ParseDuration(period)
	if err != nil {
		return 0, fmt.Errorf("invalid period %q: %w", period, err)
	}
	return periodDays(duration), nil
}

func periodDays(duration time.Duration) int {
	return int(duration / (24 * time.Hour))
}

func write(c *cli.Context, text string) error {
	_, err := fmt.Fprint(c.App.Writer, text)
	return err
}
