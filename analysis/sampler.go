package analysis

// SampleIndices 从长度为 length 的序列中均匀选出最多 size 个下标，并保证最后一个下标是 length-1。
// 只用于展示，不会修改序列本身。
func SampleIndices(length, size int) []int {
	if length <= 0 || size <= 0 {
		return []int{}
	}

	if length <= size {
		indices := make([]int, length)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	step := float64(length) / float64(size)
	indices := make([]int, size)
	for i := 0; i < size; i++ {
		indices[i] = int(float64(i) * step)
	}

	if indices[size-1] != length-1 {
		indices[size-1] = length - 1
	}
	return indices
}
