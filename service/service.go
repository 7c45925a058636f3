package service

//go:generate mockery --name=Analyzer --output=./mocks

// Analyzer 是价格查询的入口，所有方法都返回可以直接展示给用户的文本，错误也以文本形式返回。
type Analyzer interface {
	Lookup(name string) (id string, ok bool)       // 名称解析：大小写不敏感，支持别名和 URL 编码
	CommodityInfo(name string) string              // 商品概览
	PriceReport(name string, days int) string      // 最近 days 天的价格报告
	Compare(first, second string, days int) string // 两个商品最近 days 天的价格比较
	AnalyzeTrend(name string) string               // 整个历史窗口的走势分析
	ListCatalog() string                           // 支持的商品列表
}

type Notifier interface {
	Notify(string)     // 发送消息给所有订阅的用户
	OnError(err error) // 发生错误时通知用户
}

type Telegram interface {
	Notifier
	Start() // 开始接收查询命令
}
