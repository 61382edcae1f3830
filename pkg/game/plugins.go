package game

import (
	"fmt"
	"log"
	"sync"
)

// Plugin 需要在进程启动时初始化一次的全局扩展（例如滚动触发器）
type Plugin interface {
	Name() string
	Init() error
}

// 插件注册表：进程级状态，只在 App 启动时显式写入
var plugins = struct {
	sync.Mutex
	installed map[string]bool
	order     []string
}{installed: make(map[string]bool)}

// InstallPlugins 初始化尚未安装的插件
//
// 同名插件只会 Init 一次，重复调用是空操作。
// 某个插件 Init 失败时立即返回错误，该插件保持未安装状态，后续调用可以重试。
func InstallPlugins(ps ...Plugin) error {
	plugins.Lock()
	defer plugins.Unlock()

	for _, p := range ps {
		name := p.Name()
		if plugins.installed[name] {
			continue
		}
		if err := p.Init(); err != nil {
			return fmt.Errorf("install plugin %s: %w", name, err)
		}
		plugins.installed[name] = true
		plugins.order = append(plugins.order, name)
		log.Printf("[Plugins] Installed %s", name)
	}
	return nil
}

// PluginInstalled 检查插件是否已安装
func PluginInstalled(name string) bool {
	plugins.Lock()
	defer plugins.Unlock()
	return plugins.installed[name]
}

// InstalledPlugins 按安装顺序返回已安装插件名
func InstalledPlugins() []string {
	plugins.Lock()
	defer plugins.Unlock()
	return append([]string(nil), plugins.order...)
}
