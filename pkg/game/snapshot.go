package game

import (
	"time"

	"github.com/gonewx/deadzone/pkg/config"
)

// Snapshot 是发送给宿主外壳的只读状态摘要
type Snapshot struct {
	LevelIndex    int
	LevelName     string
	Health        int // 四舍五入后的生命值
	Ammo          int
	Kills         int
	FPS           float64
	SoundUnlocked bool
	Muted         bool
	Status        string // loading / ready / running / gameover
	Wave          int
	Score         int
}

// SnapshotListener 接收快照的宿主回调
type SnapshotListener func(Snapshot)

// SnapshotPublisher 节流的快照发布器
// 非强制发送间隔不小于 SnapshotInterval；时钟可注入便于测试
type SnapshotPublisher struct {
	listener SnapshotListener
	interval time.Duration
	now      func() time.Time
	lastSent time.Time
}

// NewSnapshotPublisher 创建快照发布器，listener 可为 nil（无宿主时丢弃快照）
func NewSnapshotPublisher(listener SnapshotListener) *SnapshotPublisher {
	return &SnapshotPublisher{
		listener: listener,
		interval: config.SnapshotInterval,
		now:      time.Now,
	}
}

// SetClock 注入时钟（测试用）
func (p *SnapshotPublisher) SetClock(now func() time.Time) {
	p.now = now
}

// SetListener 设置宿主回调
func (p *SnapshotPublisher) SetListener(listener SnapshotListener) {
	p.listener = listener
}

// Publish 发送快照；force 为 false 时按间隔节流
// 返回快照是否被实际发送
func (p *SnapshotPublisher) Publish(s Snapshot, force bool) bool {
	if p.listener == nil {
		return false
	}

	t := p.now()
	if !force && !p.lastSent.IsZero() && t.Sub(p.lastSent) < p.interval {
		return false
	}

	p.lastSent = t
	p.listener(s)
	return true
}
