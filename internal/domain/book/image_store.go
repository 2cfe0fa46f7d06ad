package book

import (
	"context"
)

// ImageStore 封面图二进制资产存储(对外只暴露路径字符串)
// 设计说明:
// 1. 领域层只依赖接口,本地磁盘/对象存储由infrastructure层实现
// 2. Put返回的路径原样存入Book.CoverPath,领域不解释其结构
// 3. 删除失败不影响主流程(调用方记日志即可)
type ImageStore interface {
	// Put 保存图片,返回存储路径
	// 不支持的contentType返回InvalidParams错误
	Put(ctx context.Context, data []byte, contentType string) (string, error)

	// Delete 删除指定路径的图片
	Delete(ctx context.Context, path string) error
}
