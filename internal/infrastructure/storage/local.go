package storage

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/config"
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// contentType→扩展名映射,不在表内的类型一律拒绝
var extByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpg":  ".jpg",
	"image/jpeg": ".jpeg",
}

// LocalImageStore 本地磁盘封面图存储
// 设计说明:
// 1. 实现domain/book.ImageStore接口
// 2. 文件名使用时间戳+随机数,避免覆盖
// 3. 返回的路径是相对路径,由静态文件路由对外提供
type LocalImageStore struct {
	dir string
}

var _ book.ImageStore = (*LocalImageStore)(nil)

// NewLocalImageStore 创建本地图片存储(目录不存在时创建)
func NewLocalImageStore(cfg *config.Config) (*LocalImageStore, error) {
	dir := cfg.Upload.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Put 保存图片,返回存储路径
func (s *LocalImageStore) Put(_ context.Context, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid image type, only png/jpg/jpeg allowed.")
	}

	name := fmt.Sprintf("%d%06d%s", time.Now().UnixNano(), rand.Intn(1000000), ext)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.WrapCode(apperrors.ErrCodePersistence, err, "Could not save the image, please try again.")
	}

	return path, nil
}

// Delete 删除指定路径的图片
// 路径必须落在存储目录内(防止目录穿越)
func (s *LocalImageStore) Delete(_ context.Context, path string) error {
	if path == "" {
		return nil
	}

	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) > 1 && rel[:2] == ".." {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid image path.")
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperrors.WrapCode(apperrors.ErrCodePersistence, err, "Could not delete the image.")
	}

	return nil
}
