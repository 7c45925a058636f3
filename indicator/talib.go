package indicator

import "github.com/markcheno/go-talib"

// go-talib 在输入长度不足周期时会越界，这里的包装都先检查长度。

// SMA 简单移动平均，输入少于 period 个值时返回 nil
func SMA(input []float64, period int) []float64 {
	if period < 1 || len(input) < period {
		return nil
	}
	return talib.Sma(input, period)
}

// EMA 指数移动平均，长度要求与 SMA 相同
func EMA(input []float64, period int) []float64 {
	if period < 1 || len(input) < period {
		return nil
	}
	return talib.Ema(input, period)
}

// RSI 相对强弱指数，至少需要 period+1 个值
func RSI(input []float64, period int) []float64 {
	if period < 2 || len(input) <= period {
		return nil
	}
	return talib.Rsi(input, period)
}

// Correl 两个序列在 period 窗口内的皮尔逊相关系数
func Correl(input0 []float64, input1 []float64, period int) []float64 {
	if period < 2 || len(input0) < period || len(input0) != len(input1) {
		return nil
	}
	return talib.Correl(input0, input1, period)
}

// Latest 返回指标的最新值；指标为空时 ok 为 false。
func Latest(values []float64) (value float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	return values[len(values)-1], true
}
