package metrics

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// BootstrapInterval 保存自助法得到的置信区间：下限、上限、标准差和均值。
type BootstrapInterval struct {
	Lower  float64
	Upper  float64
	StdDev float64
	Mean   float64
}

// Bootstrap 通过有放回抽样 sampleSize 次，对每个样本计算 measure，
// 再从排序后的结果中取 confidence 置信度的上下分位数。
// rng 为空时使用一个固定种子的随机源，保证同一输入得到同一区间。
func Bootstrap(rng *rand.Rand, values []float64, measure func([]float64) float64, sampleSize int,
	confidence float64) (BootstrapInterval, error) {
	if len(values) == 0 {
		return BootstrapInterval{}, ErrInsufficientData
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	data := make([]float64, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		samples := lo.Times(len(values), func(int) float64 {
			return values[rng.Intn(len(values))]
		})
		data = append(data, measure(samples))
	}

	tail := 1 - confidence
	sort.Float64s(data)
	mean, stdDev := stat.MeanStdDev(data, nil)
	upper := stat.Quantile(1-tail/2, stat.LinInterp, data, nil)
	lower := stat.Quantile(tail/2, stat.LinInterp, data, nil)

	return BootstrapInterval{
		Lower:  lower,
		Upper:  upper,
		StdDev: stdDev,
		Mean:   mean,
	}, nil
}
