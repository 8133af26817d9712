package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Watcher 配置热更新监听器
// 监听配置文件变更,重新解析后通知注册的回调,用于日志级别等运行时可调项
type Watcher struct {
	configPath string
	viper      *viper.Viper
	current    *Config
	callbacks  []func(*Config)
	mu         sync.RWMutex
	stopped    bool
}

// NewWatcher 创建配置监听器
func NewWatcher(cfg *Config, configPath string) *Watcher {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)

	return &Watcher{
		configPath: configPath,
		viper:      v,
		current:    cfg,
	}
}

// OnChange 注册配置变更回调
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start 启动配置监听
func (w *Watcher) Start() error {
	if err := w.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	w.viper.WatchConfig()
	w.viper.OnConfigChange(func(e fsnotify.Event) {
		w.mu.RLock()
		stopped := w.stopped
		w.mu.RUnlock()
		if stopped {
			return
		}

		var newCfg Config
		if err := w.viper.Unmarshal(&newCfg); err != nil {
			logrus.WithError(err).Warn("failed to reload config, keeping previous values")
			return
		}

		w.mu.Lock()
		w.current = &newCfg
		callbacks := make([]func(*Config), len(w.callbacks))
		copy(callbacks, w.callbacks)
		w.mu.Unlock()

		// 回调在锁外执行,避免回调中读配置时死锁
		for _, callback := range callbacks {
			callback(&newCfg)
		}
	})

	return nil
}

// Stop 停止配置监听
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
}

// Current 获取当前配置
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}
