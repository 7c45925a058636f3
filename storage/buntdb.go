package storage

import (
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/tidwall/buntdb"

	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/tools/log"
)

const seqIndex = "seq_index"

// Bunt 使用 buntdb 内存数据库保存商品，value 为商品的 JSON。
type Bunt struct {
	lastSeq int64
	db      *buntdb.DB
}

func FromMemory() (Storage, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}

	err = db.CreateIndex(seqIndex, "commodity:*", buntdb.IndexJSON("seq"))
	if err != nil {
		return nil, err
	}
	return &Bunt{
		db: db,
	}, nil
}

func commodityKey(id string) string {
	return "commodity:" + id
}

func (b *Bunt) nextSeq() int64 {
	return atomic.AddInt64(&b.lastSeq, 1)
}

func (b *Bunt) SaveCommodity(commodity *model.Commodity) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		key := commodityKey(commodity.ID)

		previous, err := tx.Get(key)
		switch {
		case errors.Is(err, buntdb.ErrNotFound):
			commodity.Seq = b.nextSeq()
		case err != nil:
			return err
		default:
			var stored model.Commodity
			if err := json.Unmarshal([]byte(previous), &stored); err != nil {
				return err
			}
			commodity.Seq = stored.Seq
		}

		content, err := json.Marshal(commodity)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(key, string(content), nil)
		return err
	})
}

func (b *Bunt) Commodities(filters ...CommodityFilter) ([]*model.Commodity, error) {
	commodities := make([]*model.Commodity, 0)
	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(seqIndex, func(key, value string) bool {
			var commodity model.Commodity
			if err := json.Unmarshal([]byte(value), &commodity); err != nil {
				log.WithField("key", key).Error(err)
				return true
			}
			if matches(commodity, filters) {
				commodities = append(commodities, &commodity)
			}
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return commodities, nil
}
