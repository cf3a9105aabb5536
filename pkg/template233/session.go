package template233

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/neko233-com/template233-go/pkg/template233/fieldexpr"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

// SessionState 覆盖会话的状态
type SessionState int

const (
	StateIdle SessionState = iota
	StateSelectObject
	StateSetCount
	StateSetLanguage
	StateSetExclude
	StateSetConsider
	StateSetPickLeft
	StateDone
)

var sessionStateNames = map[SessionState]string{
	StateIdle:         "Idle",
	StateSelectObject: "SelectObject",
	StateSetCount:     "SetCount",
	StateSetLanguage:  "SetLanguage",
	StateSetExclude:   "SetExclude",
	StateSetConsider:  "SetConsider",
	StateSetPickLeft:  "SetPickLeft",
	StateDone:         "Done",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

const (
	questionCustomize      = "Customize settings for individual SObjects? (Y/n)"
	questionCustomizeAgain = "Would you like to customize settings for individual SObject? (Y/n)"
	questionAnotherObject  = "Override global settings for another Object(API name)? (Y/n)"
	questionSelectObject   = "Override the global settings for Object"
	questionAddObject      = "Do you want to add? (Y/n)"
)

// OverrideSession 按对象覆盖全局设置的交互会话
// 显式状态机：Idle → SelectObject → SetCount → SetLanguage → SetExclude →
// SetConsider → SetPickLeft → Idle ... → Done
// 每次 Step 只提出当前状态的问题，测试可以用 prompt.Script 逐步驱动
type OverrideSession struct {
	prompter  prompt.Prompter
	printer   *prompt.Printer
	store     *ObjectSettingsStore
	objects   []string
	languages []prompt.Choice

	state        SessionState
	idleQuestion string
	current      string
}

// NewOverrideSession 创建覆盖会话
// 参数:
//
//	p: 提问服务
//	printer: 警告和提示输出
//	store: 对象设置仓库
//	objects: 已去重的对象名列表，会话中新增的对象会追加到末尾
//	languages: 可选语言列表
//
// 返回值:
//
//	*OverrideSession: 处于 Idle 状态的会话
func NewOverrideSession(p prompt.Prompter, printer *prompt.Printer, store *ObjectSettingsStore, objects []string, languages []string) *OverrideSession {
	return &OverrideSession{
		prompter:     p,
		printer:      printer,
		store:        store,
		objects:      slices.Clone(objects),
		languages:    prompt.Choices(languages...),
		state:        StateIdle,
		idleQuestion: questionCustomize,
	}
}

// State 当前状态
func (s *OverrideSession) State() SessionState {
	return s.state
}

// Objects 对象名列表，包含会话中新增的对象
func (s *OverrideSession) Objects() []string {
	return slices.Clone(s.objects)
}

// Run 运行会话直到 Done
// 操作员中断时返回 prompt.ErrInterrupted
func (s *OverrideSession) Run(ctx context.Context) error {
	for s.state != StateDone {
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step 执行当前状态的一步
func (s *OverrideSession) Step(ctx context.Context) error {
	from := s.state
	var err error
	switch s.state {
	case StateIdle:
		err = s.stepIdle(ctx)
	case StateSelectObject:
		err = s.stepSelectObject(ctx)
	case StateSetCount:
		err = s.stepSetCount(ctx)
	case StateSetLanguage:
		err = s.stepSetLanguage(ctx)
	case StateSetExclude:
		err = s.stepSetExclude(ctx)
	case StateSetConsider:
		err = s.stepSetConsider(ctx)
	case StateSetPickLeft:
		err = s.stepSetPickLeft(ctx)
	case StateDone:
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "override session at %s", from)
	}
	getLogger().V(2).Info("会话状态切换", "from", from.String(), "to", s.state.String(), "object", s.current)
	return nil
}

func (s *OverrideSession) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := s.prompter.Ask(ctx, question, "n")
	if err != nil {
		return false, err
	}
	return prompt.IsYes(answer), nil
}

func (s *OverrideSession) stepIdle(ctx context.Context) error {
	yes, err := s.confirm(ctx, s.idleQuestion)
	if err != nil {
		return err
	}
	if yes {
		s.state = StateSelectObject
	} else {
		s.state = StateDone
	}
	return nil
}

func (s *OverrideSession) stepSelectObject(ctx context.Context) error {
	name, err := s.prompter.Select(ctx, questionSelectObject, prompt.Choices(s.objects...), prompt.AllowCustom())
	if err != nil {
		return err
	}
	name = normalizeName(name)

	if name == "" {
		yes, err := s.confirm(ctx, questionCustomizeAgain)
		if err != nil {
			return err
		}
		if !yes {
			s.state = StateDone
		}
		return nil
	}

	if !slices.Contains(s.objects, name) {
		s.printer.Warn("Warning: '%s' is missing from the data template.", name)
		yes, err := s.confirm(ctx, questionAddObject)
		if err != nil {
			return err
		}
		if !yes {
			s.printer.Danger("Discarded: '%s'", name)
			return nil
		}
		s.objects = append(s.objects, name)
		s.printer.Success("Success: '%s' is added to data template.", name)
	}

	s.current = name
	s.store.Ensure(name)
	s.state = StateSetCount
	return nil
}

func (s *OverrideSession) stepSetCount(ctx context.Context) error {
	question := fmt.Sprintf("[%s - Count] Set number of records %s", s.current, s.printer.Dim("(blank keeps the global count)"))
	for {
		raw, err := s.prompter.Ask(ctx, question, "")
		if err != nil {
			return err
		}
		err = s.store.SetCount(s.current, raw)
		if errors.Is(err, ErrInvalidCount) {
			s.printer.Warn("Invalid input. Please enter a valid number")
			continue
		}
		if err != nil {
			return err
		}
		break
	}
	s.state = StateSetLanguage
	return nil
}

func (s *OverrideSession) stepSetLanguage(ctx context.Context) error {
	language, err := s.prompter.Select(ctx, fmt.Sprintf("[%s - Language] Specify language", s.current), s.languages)
	if err != nil {
		return err
	}
	if language != "" {
		s.store.SetLanguage(s.current, language)
	}
	s.state = StateSetExclude
	return nil
}

func (s *OverrideSession) stepSetExclude(ctx context.Context) error {
	raw, err := s.prompter.Ask(ctx,
		fmt.Sprintf("[%s - fieldsToExclude] List fields (API names) to exclude %s", s.current, s.printer.Dim("(comma-separated)")), "")
	if err != nil {
		return err
	}
	if fields := prompt.SplitList(raw); len(fields) > 0 {
		s.store.SetFieldsToExclude(s.current, fields)
	}
	s.state = StateSetConsider
	return nil
}

func (s *OverrideSession) stepSetConsider(ctx context.Context) error {
	s.printer.Note("Note: For dependent picklists, define values in order (e.g., dp-Country: [India], dp-State: [Goa]).")
	raw, err := s.prompter.Ask(ctx,
		fmt.Sprintf("[%s - fieldsToConsider] List fields (API names) to include. (E.g. Phone: [909090, 6788489], Fax )", s.current), "")
	if err != nil {
		return err
	}
	if fields := fieldexpr.Parse(raw); fields.Len() > 0 {
		s.store.SetFieldsToConsider(s.current, fields)
	}

	if conflicts := s.store.DetectConflicts(s.current); len(conflicts) > 0 {
		s.printer.Warn("Warning: Common fields found in 'fields-to-exclude' and 'fields-to-consider' in sObject '%s' is '%s' . You must remove them!",
			s.current, strings.Join(conflicts, ","))
	}
	s.state = StateSetPickLeft
	return nil
}

func (s *OverrideSession) stepSetPickLeft(ctx context.Context) error {
	answer, err := s.prompter.Select(ctx,
		fmt.Sprintf("[%s - pickLeftFields] Want to generate data for fields neither in 'fields to consider' nor in 'fields to exclude'", s.current),
		prompt.Choices("true", "false"))
	if err != nil {
		return err
	}
	if answer != "" {
		s.store.SetPickLeftFields(s.current, answer == "true")
	}

	if s.store.IsDeadEnd(s.current) {
		s.printer.Danger("No fields found to generate data. Set 'pick-left-fields' to true or add fields to 'fields-to-consider'.")
		s.state = StateSelectObject
		return nil
	}
	s.idleQuestion = questionAnotherObject
	s.state = StateIdle
	return nil
}
