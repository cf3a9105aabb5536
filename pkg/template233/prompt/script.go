package prompt

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
)

// Script 按顺序回放预设回答的提问服务
// 用于测试和演示；回答耗尽时返回 ErrInterrupted
// 回答的解析规则与 LinePrompter 相同
type Script struct {
	answers []string
	pos     int

	// Questions 已经提出的问题，按顺序记录
	Questions []string
}

// NewScript 创建脚本提问服务
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Remaining 尚未使用的回答数量
func (s *Script) Remaining() int {
	return len(s.answers) - s.pos
}

func (s *Script) next(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(ErrInterrupted, err.Error())
	}
	s.Questions = append(s.Questions, question)
	if s.pos >= len(s.answers) {
		return "", errors.Wrapf(ErrInterrupted, "script exhausted at %q", question)
	}
	answer := s.answers[s.pos]
	s.pos++
	return strings.TrimSpace(answer), nil
}

// Ask 单行文本问题
func (s *Script) Ask(ctx context.Context, question, defaultValue string) (string, error) {
	answer, err := s.next(ctx, question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Select 单选题，无法识别的回答与终端一样会重新提问
func (s *Script) Select(ctx context.Context, question string, choices []Choice, opts ...SelectOption) (string, error) {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	for {
		answer, err := s.next(ctx, question)
		if err != nil {
			return "", err
		}
		if v, ok := resolveChoice(answer, choices, cfg); ok {
			return v, nil
		}
	}
}

// MultiSelect 多选题
func (s *Script) MultiSelect(ctx context.Context, question string, choices []Choice) ([]string, error) {
	answer, err := s.next(ctx, question)
	if err != nil {
		return nil, err
	}
	return resolveMulti(answer, choices), nil
}
