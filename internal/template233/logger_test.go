package template233

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, 1)

	log.Info("模板文件已写入", "path", "a.json")
	log.V(1).Info("debug line")
	log.V(2).Info("hidden")
	log.WithName("catalog").Error(errors.New("boom"), "读取失败")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 3) {
		assert.True(t, strings.HasPrefix(lines[0], "[INFO] "))
		assert.Contains(t, lines[0], `"path"="a.json"`)
		assert.Contains(t, lines[1], "debug line")
		assert.Contains(t, lines[2], "[ERROR] catalog: ")
		assert.Contains(t, lines[2], `"error"="boom"`)
	}
}
