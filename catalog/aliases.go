package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/StudioSol/set"
)

// AliasTable 是标识符与可接受名称之间的双向映射，
// 例如 apple <-> {"apple", "蘋果", "苹果"}。
type AliasTable struct {
	byAlias map[string]string
	byID    map[string]*set.LinkedHashSetString
}

func NewAliasTable() *AliasTable {
	return &AliasTable{
		byAlias: make(map[string]string),
		byID:    make(map[string]*set.LinkedHashSetString),
	}
}

// Add 为标识符登记别名，同一个别名不能指向两个不同的标识符。
func (a *AliasTable) Add(id string, aliases ...string) error {
	id = normalize(id)
	if _, ok := a.byID[id]; !ok {
		a.byID[id] = set.NewLinkedHashSetString()
	}

	for _, alias := range aliases {
		key := normalize(alias)
		if key == "" {
			continue
		}
		if owner, ok := a.byAlias[key]; ok && owner != id {
			return fmt.Errorf("alias %q already registered for %s", alias, owner)
		}
		a.byAlias[key] = id
		a.byID[id].Add(alias)
	}
	return nil
}

// Resolve 按别名查找标识符。
func (a *AliasTable) Resolve(alias string) (string, bool) {
	id, ok := a.byAlias[normalize(alias)]
	return id, ok
}

// Aliases 按登记顺序返回标识符的全部别名。
func (a *AliasTable) Aliases(id string) []string {
	aliases, ok := a.byID[normalize(id)]
	if !ok {
		return nil
	}

	result := make([]string, 0)
	for alias := range aliases.Iter() {
		result = append(result, alias)
	}
	return result
}

// DecodeName 尝试对 URL 编码的名称解码，例如 "%E8%98%8B%E6%9E%9C" -> "蘋果"，失败时保留原值。
func DecodeName(name string) string {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
