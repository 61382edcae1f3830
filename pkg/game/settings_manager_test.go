package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Theme != ThemeLight {
		t.Errorf("Theme: got %q, want %q", settings.Theme, ThemeLight)
	}
	if !settings.EffectsEnabled {
		t.Error("EffectsEnabled: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.IsDark() {
		t.Error("Degraded mode should start with the light theme")
	}

	theme, err := sm.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme() in degraded mode error: %v", err)
	}
	if theme != ThemeDark || !sm.IsDark() {
		t.Errorf("ToggleTheme() = %q, IsDark = %v", theme, sm.IsDark())
	}
}

// TestSettingsLoadSave 测试主题切换后能从 gdata 恢复
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_confetti_settings")

	sm1 := NewSettingsManager(gdataManager)
	if _, err := sm1.ToggleTheme(); err != nil {
		t.Fatalf("ToggleTheme() error: %v", err)
	}
	sm1.SetEffectsEnabled(false)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()
	if settings.Theme != ThemeDark {
		t.Errorf("Loaded Theme: got %q, want %q", settings.Theme, ThemeDark)
	}
	if settings.EffectsEnabled {
		t.Error("Loaded EffectsEnabled: got true, want false")
	}
}

// TestSettingsLoadUnknownTheme 未知主题回退到浅色
func TestSettingsLoadUnknownTheme(t *testing.T) {
	gdataManager := openTestGdata(t, "test_confetti_unknown_theme")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("theme: sepia\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if sm.GetSettings().Theme != ThemeLight {
		t.Errorf("Theme = %q, want fallback %q", sm.GetSettings().Theme, ThemeLight)
	}
	// 缺省字段保持默认值
	if !sm.GetSettings().EffectsEnabled {
		t.Error("EffectsEnabled should keep its default when absent")
	}
}

// TestSettingsLoadCorrupted 损坏的数据使用默认设置并返回错误
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_confetti_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("theme: [")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Load() should fail on corrupted data")
	}
	if sm.GetSettings().Theme != ThemeLight {
		t.Errorf("Theme = %q after failed load, want default", sm.GetSettings().Theme)
	}
}
