package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rodrigo-brito/pricebot/model"
)

// DefaultDefinitions 是默认的蔬果目录，价格单位为台币每公斤。
func DefaultDefinitions() []model.CommodityDefinition {
	return []model.CommodityDefinition{
		{
			ID:        "apple",
			Name:      "Apple",
			Unit:      "kg",
			Currency:  "TWD",
			BasePrice: 35.5,
			Aliases:   []string{"蘋果", "苹果"},
		},
		{
			ID:        "banana",
			Name:      "Banana",
			Unit:      "kg",
			Currency:  "TWD",
			BasePrice: 28.0,
			Aliases:   []string{"香蕉"},
		},
	}
}

type definitionsFile struct {
	Commodities []model.CommodityDefinition `yaml:"commodities"`
}

// LoadDefinitions 读取 YAML 格式的目录定义，支持 ${VAR} 环境变量展开。
//
//	commodities:
//	  - id: apple
//	    name: Apple
//	    unit: kg
//	    currency: TWD
//	    base_price: 35.5
//	    aliases: [蘋果, 苹果]
func LoadDefinitions(path string) ([]model.CommodityDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseDefinitions(data)
}

func ParseDefinitions(data []byte) ([]model.CommodityDefinition, error) {
	var file definitionsFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &file); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	if len(file.Commodities) == 0 {
		return nil, fmt.Errorf("%w: catalog has no commodities", model.ErrInvalidDefinition)
	}

	for i := range file.Commodities {
		definition := &file.Commodities[i]
		if err := definition.Validate(); err != nil {
			return nil, err
		}
		if definition.Name == "" {
			definition.Name = definition.ID
		}
		if definition.Unit == "" {
			definition.Unit = "kg"
		}
		if definition.Currency == "" {
			definition.Currency = "TWD"
		}
	}
	return file.Commodities, nil
}
