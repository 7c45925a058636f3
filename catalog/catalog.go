package catalog

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/storage"
)

var ErrDuplicateCommodity = errors.New("duplicate commodity")

// Catalog 是按插入顺序保存的商品目录，启动时构建，之后只读。
// 只读意味着可以被多个查询并发访问而不需要加锁。
type Catalog struct {
	ids         []string
	commodities map[string]*model.Commodity
	aliases     *AliasTable
}

func New(aliases *AliasTable, commodities ...*model.Commodity) (*Catalog, error) {
	if aliases == nil {
		aliases = NewAliasTable()
	}

	catalog := &Catalog{
		commodities: make(map[string]*model.Commodity, len(commodities)),
		aliases:     aliases,
	}

	for _, commodity := range commodities {
		id := normalize(commodity.ID)
		if _, ok := catalog.commodities[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommodity, commodity.ID)
		}
		catalog.ids = append(catalog.ids, id)
		catalog.commodities[id] = commodity
	}

	return catalog, nil
}

// Seed 用生成器为每个定义生成价格，并按顺序写入存储。
func Seed(store storage.Storage, generator *Generator, definitions ...model.CommodityDefinition) error {
	// 存储按 ID 覆盖写入，重复的 ID 必须在写入前拒绝
	seen := make(map[string]struct{}, len(definitions))
	for _, definition := range definitions {
		if err := definition.Validate(); err != nil {
			return err
		}
		id := normalize(definition.ID)
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCommodity, definition.ID)
		}
		seen[id] = struct{}{}
	}

	for _, definition := range definitions {
		if err := store.SaveCommodity(generator.Commodity(definition)); err != nil {
			return fmt.Errorf("save %s: %w", definition.ID, err)
		}
	}
	return nil
}

// Load 从存储中按写入顺序读取全部商品，构建目录。
func Load(store storage.Storage, aliases *AliasTable) (*Catalog, error) {
	commodities, err := store.Commodities()
	if err != nil {
		return nil, fmt.Errorf("load commodities: %w", err)
	}
	return New(aliases, commodities...)
}

// Aliases 根据定义构建别名表，标识符和显示名称本身也是别名。
func Aliases(definitions ...model.CommodityDefinition) (*AliasTable, error) {
	table := NewAliasTable()
	for _, definition := range definitions {
		names := append([]string{definition.Name}, definition.Aliases...)
		if err := table.Add(definition.ID, names...); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func (c *Catalog) Get(id string) (*model.Commodity, bool) {
	commodity, ok := c.commodities[normalize(id)]
	return commodity, ok
}

// Lookup 将名称解析为标识符：先做 URL 解码和小写处理，再匹配标识符，最后查别名表。
func (c *Catalog) Lookup(name string) (string, bool) {
	key := normalize(DecodeName(name))
	if _, ok := c.commodities[key]; ok {
		return key, true
	}
	if id, ok := c.aliases.Resolve(key); ok {
		if _, exists := c.commodities[id]; exists {
			return id, true
		}
	}
	return "", false
}

func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Commodities 按插入顺序返回全部商品。
func (c *Catalog) Commodities() []*model.Commodity {
	return lo.Map(c.ids, func(id string, _ int) *model.Commodity {
		return c.commodities[id]
	})
}

func (c *Catalog) Aliases(id string) []string {
	return c.aliases.Aliases(id)
}

func (c *Catalog) Len() int {
	return len(c.ids)
}
