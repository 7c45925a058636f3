package model

import (
	"golang.org/x/exp/constraints"
)

// Series 是一个有序序列，最旧的值在前。
type Series[T constraints.Ordered] []T

// Last 返回倒数第 position 个值，0 表示最新值。
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

func (s Series[T]) LastValues(size int) []T {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Deltas 返回相邻两个值的差 s[i]-s[i-1]。
func Deltas[T constraints.Integer | constraints.Float](s Series[T]) []T {
	if len(s) < 2 {
		return nil
	}
	deltas := make([]T, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		deltas = append(deltas, s[i]-s[i-1])
	}
	return deltas
}
