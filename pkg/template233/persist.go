package template233

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/neko233-com/template233-go/pkg/template233/dto"
)

// MarshalTemplate 把模板文档序列化为两个空格缩进的 JSON
func MarshalTemplate(cfg *dto.GlobalConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "encode data template")
	}
	return buf.Bytes(), nil
}

// WriteTemplate 写出模板文件
// 先写入同目录下的临时文件再重命名，覆盖已有文件时不会留下半个文件
// 是否允许覆盖由调用方事先确认
// 参数:
//
//	path: 目标文件路径
//	cfg: 模板文档
//
// 返回值:
//
//	error: 序列化或写入失败
func WriteTemplate(path string, cfg *dto.GlobalConfig) error {
	data, err := MarshalTemplate(cfg)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "rename %s to %s", tmpName, path)
	}

	getLogger().V(1).Info("模板文件已写入", "path", path, "bytes", len(data))
	return nil
}

// ReadTemplate 读取模板文件
// 以 "_" 开头的注释键会被忽略
func ReadTemplate(path string) (*dto.GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var cfg dto.GlobalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", path), ErrInvalidDocument)
	}
	return &cfg, nil
}
