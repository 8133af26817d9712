package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 附件存储前缀,决定媒体目录下的子目录
const (
	OrgAttachPrefix = "org_attach"
	EmpAttachPrefix = "emp_attach"
)

// FileStore 本地文件存储
// 上传文件保存在 {root}/{prefix}/ 下,对外暴露 {baseURL}/{prefix}/ 形式的 URL
type FileStore struct {
	root    string
	baseURL string
}

// NewFileStore 创建本地文件存储
func NewFileStore(root string, baseURL string) *FileStore {
	return &FileStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save 保存上传内容,返回存储文件名与访问 URL
// 存储文件名由前缀、随机 token 和原始文件名拼接,避免同名覆盖
func (s *FileStore) Save(prefix string, originalName string, src io.Reader) (string, string, error) {
	dir := filepath.Join(s.root, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	storedName := fmt.Sprintf("%s_%s_%s", prefix, uuid.New().String(), originalName)
	dst, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return storedName, s.baseURL + "/" + prefix + "/" + storedName, nil
}

// Remove 按 URL 删除底层文件,文件不存在不视为错误
func (s *FileStore) Remove(fileURL string) error {
	rel := strings.TrimPrefix(fileURL, s.baseURL)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return nil
	}
	path := filepath.Join(s.root, filepath.FromSlash(rel))
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists 判断 URL 对应的底层文件是否存在
func (s *FileStore) Exists(fileURL string) bool {
	rel := strings.TrimPrefix(fileURL, s.baseURL)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(rel)))
	return err == nil
}
