// Package game 提供跨场景共享的状态和管理器：
// 游戏状态机、场景管理、设置持久化、音频播放和宿主快照
package game

// Status 引擎状态机
type Status int

const (
	// StatusLoading 资源/关卡获取中
	StatusLoading Status = iota
	// StatusReady 加载完成，等待启动
	StatusReady
	// StatusRunning 帧循环运行中
	StatusRunning
	// StatusGameOver 玩家死亡，模拟停止
	StatusGameOver
)

// String 返回状态的字符串表示，与快照契约一致
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState 存储跨系统共享的全局状态
// 每个引擎实例持有一个；系统通过构造参数显式注入，不使用环境全局变量
type GameState struct {
	Status     Status
	LevelIndex int
	LevelName  string

	// 摄像机位置（世界坐标，视口左上角）
	CameraX float64
	CameraY float64

	// 屏幕震动强度，受击时增加，线性衰减
	// 只作用于世界空间变换，绝不影响 UI 空间
	ShakeTrauma float64

	// 测得的帧率；测量通道不可用时保持 0（静默降级）
	FPS float64

	// Paused 暂停标志：冻结模拟但继续绘制
	Paused bool
}

// NewGameState 创建初始处于 loading 状态的游戏状态
func NewGameState() *GameState {
	return &GameState{Status: StatusLoading}
}

// TransitionGameOver 切换到 gameover 状态
// 已处于 gameover 时返回 false，保证死亡转换只发生一次
func (gs *GameState) TransitionGameOver() bool {
	if gs.Status == StatusGameOver {
		return false
	}
	gs.Status = StatusGameOver
	return true
}

// AddShake 叠加屏幕震动强度，封顶 1
func (gs *GameState) AddShake(amount float64) {
	gs.ShakeTrauma += amount
	if gs.ShakeTrauma > 1 {
		gs.ShakeTrauma = 1
	}
}

// DecayShake 线性衰减震动强度
func (gs *GameState) DecayShake(dt float64) {
	gs.ShakeTrauma -= 2.2 * dt
	if gs.ShakeTrauma < 0 {
		gs.ShakeTrauma = 0
	}
}
