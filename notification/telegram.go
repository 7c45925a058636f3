package notification

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jpillora/backoff"
	tb "gopkg.in/tucnak/telebot.v2"

	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/service"
	"github.com/rodrigo-brito/pricebot/tools/log"
)

// GreetingAttempts 启动问候消息最多重试的次数
const GreetingAttempts = 5

var (
	// 命令后可以带 @botname，群组中 Telegram 会自动加上
	infoRegexp    = regexp.MustCompile(`^/info(?:@\w+)?\s+(?P<name>\S+)\s*$`)
	reportRegexp  = regexp.MustCompile(`^/report(?:@\w+)?\s+(?P<name>\S+)(?:\s+(?P<days>\d+))?\s*$`)
	compareRegexp = regexp.MustCompile(`^/compare(?:@\w+)?\s+(?P<first>\S+)\s+(?P<second>\S+)(?:\s+(?P<days>\d+))?\s*$`)
	trendRegexp   = regexp.MustCompile(`^/trend(?:@\w+)?\s+(?P<name>\S+)\s*$`)
)

var commands = []tb.Command{
	{Text: "/list", Description: "List supported commodities"},
	{Text: "/info", Description: "Price overview: /info <name>"},
	{Text: "/report", Description: "Price report: /report <name> [days]"},
	{Text: "/compare", Description: "Compare two commodities: /compare <a> <b> [days]"},
	{Text: "/trend", Description: "Trend analysis: /trend <name>"},
	{Text: "/help", Description: "Show this help"},
}

type telegram struct {
	settings    model.Settings
	analyzer    service.Analyzer
	defaultMenu *tb.ReplyMarkup
	client      *tb.Bot
}

type Option func(telegram *telegram)

func NewTelegram(analyzer service.Analyzer, settings model.Settings, options ...Option) (service.Telegram, error) {
	menu := &tb.ReplyMarkup{ResizeReplyKeyboard: true}
	poller := &tb.LongPoller{Timeout: 10 * time.Second}

	userMiddleware := tb.NewMiddlewarePoller(poller, func(u *tb.Update) bool {
		if u.Message == nil || u.Message.Sender == nil {
			log.Error("no message, ", u)
			return false
		}

		if allowed(settings.Telegram.Users, int(u.Message.Sender.ID)) {
			return true
		}
		log.Error("invalid user, ", u.Message)
		return false
	})

	client, err := tb.NewBot(tb.Settings{
		ParseMode: tb.ModeHTML,
		Token:     settings.Telegram.Token,
		Poller:    userMiddleware,
	})
	if err != nil {
		return nil, err
	}

	err = client.SetCommands(commands)
	if err != nil {
		return nil, err
	}

	menu.Reply(
		menu.Row(menu.Text("/list"), menu.Text("/help")),
	)

	bot := &telegram{
		analyzer:    analyzer,
		client:      client,
		settings:    settings,
		defaultMenu: menu,
	}

	for _, option := range options {
		option(bot)
	}

	for _, command := range commands {
		client.Handle(command.Text, bot.QueryHandle)
	}
	client.Handle("/start", bot.QueryHandle)

	return bot, nil
}

func allowed(users []int, id int) bool {
	for _, user := range users {
		if user == id {
			return true
		}
	}
	return false
}

func (t telegram) Start() {
	go t.client.Start()
	for _, id := range t.settings.Telegram.Users {
		t.greet(id)
	}
}

// greet 发送启动消息，失败时按指数退避重试
func (t telegram) greet(id int) {
	ba := &backoff.Backoff{
		Min: 100 * time.Millisecond,
		Max: 5 * time.Second,
	}

	for {
		_, err := t.client.Send(&tb.User{ID: int64(id)}, "Price bot initialized.", t.defaultMenu)
		if err == nil {
			return
		}
		if int(ba.Attempt()) >= GreetingAttempts-1 {
			log.WithField("user", id).Error(err)
			return
		}
		time.Sleep(ba.Duration())
	}
}

func (t telegram) Notify(text string) {
	for _, user := range t.settings.Telegram.Users {
		_, err := t.client.Send(&tb.User{ID: int64(user)}, text)
		if err != nil {
			log.Error(err)
		}
	}
}

func (t telegram) OnError(err error) {
	t.Notify(fmt.Sprintf("🛑 ERROR\n%s", escapeHTML(err.Error())))
}

// QueryHandle 处理所有查询命令，报告以等宽字体发送，保证表格对齐
func (t telegram) QueryHandle(m *tb.Message) {
	_, err := t.client.Send(m.Sender, Monospace(Reply(t.analyzer, m.Text)))
	if err != nil {
		log.Error(err)
	}
}

func Monospace(text string) string {
	return "<pre>" + escapeHTML(text) + "</pre>"
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// Reply 将一条命令文本转换为回复文本，不依赖 Telegram 客户端
func Reply(analyzer service.Analyzer, text string) string {
	text = strings.TrimSpace(text)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Help()
	}

	command := strings.SplitN(fields[0], "@", 2)[0]
	switch command {
	case "/list":
		return analyzer.ListCatalog()
	case "/info":
		match := infoRegexp.FindStringSubmatch(text)
		if match == nil {
			return usage("/info")
		}
		return analyzer.CommodityInfo(match[infoRegexp.SubexpIndex("name")])
	case "/report":
		match := reportRegexp.FindStringSubmatch(text)
		if match == nil {
			return usage("/report")
		}
		days := parseDays(match[reportRegexp.SubexpIndex("days")])
		return analyzer.PriceReport(match[reportRegexp.SubexpIndex("name")], days)
	case "/compare":
		match := compareRegexp.FindStringSubmatch(text)
		if match == nil {
			return usage("/compare")
		}
		days := parseDays(match[compareRegexp.SubexpIndex("days")])
		return analyzer.Compare(match[compareRegexp.SubexpIndex("first")],
			match[compareRegexp.SubexpIndex("second")], days)
	case "/trend":
		match := trendRegexp.FindStringSubmatch(text)
		if match == nil {
			return usage("/trend")
		}
		return analyzer.AnalyzeTrend(match[trendRegexp.SubexpIndex("name")])
	case "/help", "/start":
		return Help()
	default:
		return fmt.Sprintf("Unknown command %s\n\n%s", command, Help())
	}
}

// parseDays 缺省或无法解析时返回 0，由查询层使用默认天数
func parseDays(text string) int {
	if text == "" {
		return 0
	}
	days, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return days
}

func usage(text string) string {
	for _, command := range commands {
		parts := strings.SplitN(command.Description, ": ", 2)
		if command.Text == text && len(parts) == 2 {
			return "Usage: " + parts[1]
		}
	}
	return Help()
}

func Help() string {
	lines := make([]string, 0, len(commands)+1)
	lines = append(lines, "Commands:")
	for _, command := range commands {
		lines = append(lines, fmt.Sprintf("%s - %s", command.Text, command.Description))
	}
	return strings.Join(lines, "\n")
}
