package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// LinePrompter 基于行输入的提问服务
// 适用于终端和管道输入；输入流结束视为操作员中断
type LinePrompter struct {
	out   io.Writer
	lines chan string
}

// NewLinePrompter 创建行输入提问服务
// 构造时启动唯一的读取协程，之后每个问题从该协程取一行
// 参数:
//
//	in: 输入流，通常为 os.Stdin
//	out: 问题输出，通常为 os.Stdout
//
// 返回值:
//
//	*LinePrompter: 提问服务实例
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	p := &LinePrompter{
		out:   out,
		lines: make(chan string),
	}
	go p.readLoop(in)
	return p
}

func (p *LinePrompter) readLoop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.lines <- scanner.Text()
	}
	close(p.lines)
}

func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", errors.Wrap(ErrInterrupted, ctx.Err().Error())
	case line, ok := <-p.lines:
		if !ok {
			return "", errors.Wrap(ErrInterrupted, "input closed")
		}
		return strings.TrimSpace(line), nil
	}
}

// Ask 单行文本问题
func (p *LinePrompter) Ask(ctx context.Context, question, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "? %s (%s): ", question, defaultValue)
	} else {
		fmt.Fprintf(p.out, "? %s: ", question)
	}
	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (p *LinePrompter) printChoices(question string, choices []Choice) {
	fmt.Fprintf(p.out, "? %s\n", question)
	for i, c := range choices {
		if c.Hint != "" {
			fmt.Fprintf(p.out, "  %d) %s  %s\n", i+1, c.Name, c.Hint)
		} else {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, c.Name)
		}
	}
}

// Select 单选题，回答可以是序号或名称，留空表示放弃
func (p *LinePrompter) Select(ctx context.Context, question string, choices []Choice, opts ...SelectOption) (string, error) {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	p.printChoices(question, choices)
	for {
		fmt.Fprint(p.out, "> ")
		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if v, ok := resolveChoice(answer, choices, cfg); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid selection, try again.")
	}
}

// MultiSelect 多选题，回答为逗号或空格分隔的序号或名称
func (p *LinePrompter) MultiSelect(ctx context.Context, question string, choices []Choice) ([]string, error) {
	p.printChoices(question, choices)
	fmt.Fprint(p.out, "> ")
	answer, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	return resolveMulti(answer, choices), nil
}
