package template233

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewConsoleLogger 默认的控制台日志实现
// 基于 funcr，错误日志以红色输出
// 参数:
//
//	w: 输出目标，通常为 os.Stderr
//	verbosity: 详细级别，V(n) 中 n 不大于该值的日志才会输出
func NewConsoleLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		line := args
		if prefix != "" {
			line = prefix + ": " + args
		}
		if strings.Contains(args, `"error"=`) {
			fmt.Fprintf(w, "\033[31m[ERROR] %s\033[0m\n", line)
			return
		}
		fmt.Fprintf(w, "[INFO] %s\n", line)
	}, funcr.Options{Verbosity: verbosity})
}
