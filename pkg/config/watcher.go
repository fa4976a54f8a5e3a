package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce 最后一次文件事件之后等待的时间
// 编辑器保存一次通常产生多个 Write/Create 事件，只在事件停止后加载一次
const reloadDebounce = 100 * time.Millisecond

// Watcher 监听配置文件变化并重新加载
//
// 监听的是文件所在目录而不是文件本身：很多编辑器保存时会替换文件，
// 直接监听文件会在第一次保存后失效。
// 重新加载的配置通过 Updates() 交给场景，由场景在下一帧开始时应用。
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *ApartmentConfig
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// WatchApartmentConfig 开始监听 path 指向的配置文件
func WatchApartmentConfig(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan *ApartmentConfig, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	log.Printf("[ConfigWatcher] Watching %s", abs)
	return w, nil
}

// Updates 返回重新加载成功的配置，只保留最新的一份
func (w *Watcher) Updates() <-chan *ApartmentConfig {
	return w.updates
}

// Close 停止监听
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	debounce := time.NewTimer(reloadDebounce)
	debounce.Stop()
	defer debounce.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-debounce.C:
			w.reload()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			debounce.Reset(reloadDebounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ConfigWatcher] Watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadApartmentConfig(w.path)
	if err != nil {
		// 保存过程中可能读到半个文件，保留旧配置等下一次事件
		log.Printf("[ConfigWatcher] Reload failed, keeping previous config: %v", err)
		return
	}
	log.Printf("[ConfigWatcher] Reloaded %s", w.path)

	// 新配置覆盖尚未被消费的旧配置
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	case <-w.done:
	}
}
