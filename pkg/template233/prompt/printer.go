package prompt

import (
	"fmt"
	"io"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[1;31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[1;34m"
	ansiDim    = "\033[2m"
)

// Printer 面向操作员的提示输出
// 警告、成功等消息只是展示，不影响流程
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter 创建输出器，color 为 false 时输出纯文本
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(code, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.color {
		msg = code + msg + ansiReset
	}
	fmt.Fprintln(p.w, msg)
}

// Plain 普通文本
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Bold 粗体
func (p *Printer) Bold(format string, args ...interface{}) { p.paint(ansiBold, format, args...) }

// Warn 黄色警告
func (p *Printer) Warn(format string, args ...interface{}) { p.paint(ansiYellow, format, args...) }

// Danger 红色粗体
func (p *Printer) Danger(format string, args ...interface{}) { p.paint(ansiRed, format, args...) }

// Success 绿色
func (p *Printer) Success(format string, args ...interface{}) { p.paint(ansiGreen, format, args...) }

// Note 蓝色粗体提示
func (p *Printer) Note(format string, args ...interface{}) { p.paint(ansiBlue, format, args...) }

// Dim 返回弱化显示的片段，用于拼接问题文本
func (p *Printer) Dim(s string) string {
	if !p.color {
		return s
	}
	return ansiDim + s + ansiReset
}
