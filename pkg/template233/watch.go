package template233

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

const (
	// WatchBatchDelay 批量延迟时间（合并短时间内的多次保存）
	WatchBatchDelay = 500 * time.Millisecond

	// WatchCooldown 两次回调之间的最小间隔
	WatchCooldown = 300 * time.Millisecond
)

// TemplateWatcher 监听模板文件变化
// 编辑器保存时往往产生多个事件，这里先批量延迟再回调，并保证两次回调之间有冷却时间
type TemplateWatcher struct {
	path     string
	onChange func()

	BatchDelay time.Duration
	Cooldown   time.Duration

	mutex   sync.Mutex
	timer   *time.Timer
	lastRun time.Time
	running bool
	stopped bool
}

// NewTemplateWatcher 创建监听器
// 参数:
//
//	path: 模板文件路径
//	onChange: 文件变化后的回调，同一时间只会有一个回调在执行
func NewTemplateWatcher(path string, onChange func()) *TemplateWatcher {
	return &TemplateWatcher{
		path:       filepath.Clean(path),
		onChange:   onChange,
		BatchDelay: WatchBatchDelay,
		Cooldown:   WatchCooldown,
	}
}

// schedule 记录一次变化，重置批量定时器
func (w *TemplateWatcher) schedule() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.BatchDelay, w.trigger)
}

func (w *TemplateWatcher) trigger() {
	w.mutex.Lock()
	if w.stopped {
		w.mutex.Unlock()
		return
	}

	// 还在冷却期，延迟执行
	if since := time.Since(w.lastRun); !w.lastRun.IsZero() && since < w.Cooldown {
		remaining := w.Cooldown - since
		getLogger().V(1).Info("模板监听冷却中，延迟校验", "remainingMs", remaining.Milliseconds())
		w.timer = time.AfterFunc(remaining, w.trigger)
		w.mutex.Unlock()
		return
	}

	if w.running {
		w.timer = time.AfterFunc(100*time.Millisecond, w.trigger)
		w.mutex.Unlock()
		return
	}
	w.running = true
	w.mutex.Unlock()

	getLogger().Info("检测到模板文件变化", "path", w.path)
	w.onChange()

	w.mutex.Lock()
	w.lastRun = time.Now()
	w.running = false
	w.mutex.Unlock()
}

func (w *TemplateWatcher) stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Run 开始监听，阻塞直到 ctx 结束
// 监听模板所在目录，临时文件改名覆盖也能被捕获
// 返回值:
//
//	error: 创建监听器失败；ctx 结束时返回 nil
func (w *TemplateWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	defer watcher.Close()
	defer w.stop()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	getLogger().Info("模板监听已启动", "path", w.path,
		"batchDelay", w.BatchDelay.Milliseconds(), "cooldown", w.Cooldown.Milliseconds())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			getLogger().Error(err, "模板监听错误")
		}
	}
}
