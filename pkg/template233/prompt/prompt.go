// Package prompt 提供交互式提问服务
//
// Prompter 负责渲染问题并读取操作员的回答；
// 操作员中断（Ctrl+C、输入流关闭）统一返回 ErrInterrupted，
// 调用方据此立即结束整个会话。
package prompt

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInterrupted 操作员中断
var ErrInterrupted = errors.New("prompt interrupted")

// Choice 选择题的一个选项
type Choice struct {
	Name  string // 展示名
	Value string // 选中后返回的值
	Hint  string
}

// Choices 用同一组字符串构造选项，展示名与值相同
func Choices(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Name: v, Value: v})
	}
	return out
}

type selectConfig struct {
	allowCustom bool
}

// SelectOption 单选题选项
type SelectOption func(*selectConfig)

// AllowCustom 允许输入列表之外的值，原样（小写）返回
func AllowCustom() SelectOption {
	return func(c *selectConfig) { c.allowCustom = true }
}

// Prompter 提问服务
type Prompter interface {
	// Ask 单行文本问题
	// 返回去掉首尾空白的回答，留空时返回 defaultValue
	Ask(ctx context.Context, question, defaultValue string) (string, error)

	// Select 单选题
	// 返回选中项的值，操作员放弃选择时返回空字符串
	Select(ctx context.Context, question string, choices []Choice, opts ...SelectOption) (string, error)

	// MultiSelect 多选题
	// 返回选中项的值，可能为空
	MultiSelect(ctx context.Context, question string, choices []Choice) ([]string, error)
}

// IsYes 判断回答是否为肯定
func IsYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}

// SplitList 按逗号和空白切分列表并转为小写，去掉空项
func SplitList(input string) []string {
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return fields
}

// resolveChoice 把一行回答解析为选项值
// 支持序号（从 1 开始）、展示名或值（不区分大小写）
// 返回值 ok 为 false 表示回答无法识别
func resolveChoice(answer string, choices []Choice, cfg selectConfig) (string, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", true
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1].Value, true
	}
	for _, c := range choices {
		if strings.EqualFold(c.Name, answer) || strings.EqualFold(c.Value, answer) {
			return c.Value, true
		}
	}
	if cfg.allowCustom {
		return strings.ToLower(answer), true
	}
	return "", false
}

// resolveMulti 把一行回答解析为多个选项值，无法识别的部分忽略，结果去重
func resolveMulti(answer string, choices []Choice) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range SplitList(answer) {
		v, ok := resolveChoice(part, choices, selectConfig{})
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
