//go:build tools
// +build tools

package tools

// 固定 mockery 版本，service/mocks 下的 mock 由 go generate 生成
import (
	_ "github.com/vektra/mockery/v2"
)
