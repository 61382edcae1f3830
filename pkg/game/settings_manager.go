package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 主题常量，与持久化的字符串值一致
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// AppSettings 全局应用设置
type AppSettings struct {
	// Theme 页面主题："light" 或 "dark"
	Theme string `yaml:"theme"`

	// EffectsEnabled 是否播放庆祝效果（关闭后激活信号被忽略）
	EffectsEnabled bool `yaml:"effectsEnabled"`
}

// DefaultSettings 返回默认设置
// 没有保存过主题时使用浅色主题
func DefaultSettings() *AppSettings {
	return &AppSettings{
		Theme:          ThemeLight,
		EffectsEnabled: true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AppSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误：记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或没有存档时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 未知主题值回退到默认
	if loaded.Theme != ThemeLight && loaded.Theme != ThemeDark {
		log.Printf("[SettingsManager] Unknown theme %q, falling back to %s", loaded.Theme, ThemeLight)
		loaded.Theme = ThemeLight
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (theme=%s)", loaded.Theme)
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AppSettings {
	return sm.settings
}

// IsDark 当前是否为深色主题
func (sm *SettingsManager) IsDark() bool {
	return sm.settings.Theme == ThemeDark
}

// ToggleTheme 切换主题并立即持久化
// 返回切换后的主题
func (sm *SettingsManager) ToggleTheme() (string, error) {
	if sm.IsDark() {
		sm.settings.Theme = ThemeLight
	} else {
		sm.settings.Theme = ThemeDark
	}
	return sm.settings.Theme, sm.Save()
}

// SetEffectsEnabled 设置庆祝效果开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEffectsEnabled(enabled bool) {
	sm.settings.EffectsEnabled = enabled
}
