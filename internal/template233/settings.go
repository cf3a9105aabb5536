package template233

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile 当前目录下的默认设置文件
const DefaultSettingsFile = "template233.yaml"

// Settings 命令行工具的设置
// 优先级: 内置默认值 < 设置文件 < 环境变量 < 命令行参数
type Settings struct {
	DataDir        string   `yaml:"dataDir"`
	Languages      []string `yaml:"languages"`
	DefaultCount   int      `yaml:"defaultCount"`
	DefaultObjects string   `yaml:"defaultObjects"`
	SchemaDir      string   `yaml:"schemaDir"`
	Color          *bool    `yaml:"color"`
}

// DefaultSettings 内置默认值
func DefaultSettings() Settings {
	color := true
	return Settings{
		DataDir:        "data_gen",
		Languages:      []string{"en"},
		DefaultCount:   1,
		DefaultObjects: "Lead",
		Color:          &color,
	}
}

// LoadSettings 读取设置
// path 为空时尝试当前目录的 template233.yaml，不存在则只使用默认值；
// 显式指定的文件必须存在
// 环境变量 TEMPLATE233_DIR、TEMPLATE233_SCHEMA_DIR 覆盖文件中的对应项
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	explicit := path != ""
	if !explicit {
		path = DefaultSettingsFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fromFile Settings
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return settings, errors.Wrapf(err, "parse %s", path)
		}
		settings = settings.merge(fromFile)
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return settings, errors.Wrapf(err, "read %s", path)
	}

	if dir := os.Getenv("TEMPLATE233_DIR"); dir != "" {
		settings.DataDir = dir
	}
	if dir := os.Getenv("TEMPLATE233_SCHEMA_DIR"); dir != "" {
		settings.SchemaDir = dir
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func (s Settings) merge(o Settings) Settings {
	if o.DataDir != "" {
		s.DataDir = o.DataDir
	}
	if len(o.Languages) > 0 {
		s.Languages = o.Languages
	}
	if o.DefaultCount != 0 {
		s.DefaultCount = o.DefaultCount
	}
	if o.DefaultObjects != "" {
		s.DefaultObjects = o.DefaultObjects
	}
	if o.SchemaDir != "" {
		s.SchemaDir = o.SchemaDir
	}
	if o.Color != nil {
		s.Color = o.Color
	}
	return s
}

// Validate 校验设置，语言列表中的每一项都必须是合法的语言标签
func (s Settings) Validate() error {
	if s.DefaultCount <= 0 {
		return errors.Newf("defaultCount must be positive, got %d", s.DefaultCount)
	}
	if len(s.Languages) == 0 {
		return errors.New("languages must not be empty")
	}
	for _, lang := range s.Languages {
		if _, err := language.Parse(strings.TrimSpace(lang)); err != nil {
			return errors.Wrapf(err, "invalid language %q", lang)
		}
	}
	return nil
}

// ColorEnabled 是否输出彩色文本
func (s Settings) ColorEnabled() bool {
	return s.Color == nil || *s.Color
}
