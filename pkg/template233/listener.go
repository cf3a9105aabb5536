package template233

import "github.com/neko233-com/template233-go/pkg/template233/dto"

// SettingsChangeListener 对象设置变更监听器
// 每次对象的覆盖设置被修改后回调
type SettingsChangeListener interface {
	// OnSettingsChange 当对象设置发生变化时被调用
	// 参数:
	//   object: 对象名（小写）
	//   settings: 修改后的设置，回调内不应再修改
	OnSettingsChange(object string, settings *dto.ObjectSettings)
}

// SettingsChangeFunc 函数形式的监听器
type SettingsChangeFunc func(object string, settings *dto.ObjectSettings)

// OnSettingsChange 实现 SettingsChangeListener
func (f SettingsChangeFunc) OnSettingsChange(object string, settings *dto.ObjectSettings) {
	f(object, settings)
}

// logSettingsChange 以调试级别记录每次变更
var logSettingsChange = SettingsChangeFunc(func(object string, settings *dto.ObjectSettings) {
	getLogger().V(1).Info("对象设置已更新",
		"object", object,
		"hasCount", settings.Count != nil,
		"language", settings.Language,
		"excluded", len(settings.FieldsToExclude),
		"considered", settings.FieldsToConsider.Len(),
	)
})
