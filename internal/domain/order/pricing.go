package order

import (
	"context"
)

// PriceResolver 价格解析器
// 设计说明:
// 1. 给定图书id列表,返回目录中的权威单价(id→分)
// 2. 任一id不存在时整体失败(NotFound),调用方不得用默认价格替代
// 3. 纯读取,无副作用;图书领域服务实现此接口
type PriceResolver interface {
	ResolvePrices(ctx context.Context, ids []uint) (map[uint]int64, error)
}
