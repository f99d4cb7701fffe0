// Package systems 实现引擎的逐帧模拟系统
// 每个系统是一个携带依赖的结构体，Update 在每个 tick 内串行执行；
// 系统之间只通过共享的实体存储和游戏状态通信
package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ControlState 数字按键控制状态
type ControlState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Fire    bool
}

// InputState 当前帧归一化后的输入状态
// 摇杆激活时覆盖键盘移动；触摸瞄准激活时覆盖指针朝向并隐含持续开火
type InputState struct {
	Controls ControlState

	// 归一化摇杆向量，分量 ∈ [-1,1]
	JoyX, JoyY float64
	JoyActive  bool

	// 触摸瞄准目标（屏幕坐标）
	AimX, AimY float64
	AimActive  bool

	// 指针位置（屏幕坐标），桌面瞄准通道
	PointerX, PointerY float64
}

// MovementVector 返回归一化移动向量
// 摇杆激活时优先；模长超过 1 时重新归一化；模长 0 表示静止
func (s *InputState) MovementVector() (float64, float64) {
	var x, y float64
	if s.JoyActive {
		x, y = s.JoyX, s.JoyY
	} else {
		if s.Controls.Left {
			x -= 1
		}
		if s.Controls.Right {
			x += 1
		}
		if s.Controls.Forward {
			y -= 1
		}
		if s.Controls.Back {
			y += 1
		}
	}

	if mag := math.Hypot(x, y); mag > 1 {
		x /= mag
		y /= mag
	}
	return x, y
}

// FireIntent 返回是否有开火意图：显式开火键或触摸瞄准激活
func (s *InputState) FireIntent() bool {
	return s.Controls.Fire || s.AimActive
}

// InputSystem 把键盘/鼠标/触摸归一化为 InputState
// 宿主也可以通过 SetControl / SetJoystick / SetAim 直接注入
// 归一化输入（外部 InputAdapter 通道），注入值在下一次轮询前生效
type InputSystem struct {
	state InputState

	// 外部注入标志：置位后轮询不覆盖对应通道
	controlsInjected bool
	joystickInjected bool
	aimInjected      bool

	// 边沿触发事件（当帧有效）
	MuteToggled  bool
	PauseToggled bool
	UsePressed   bool

	usePending bool
}

// NewInputSystem 创建输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// State 返回当前帧的输入状态
func (is *InputSystem) State() *InputState {
	return &is.state
}

// InjectUse 外部注入一次使用事件，下一次 Update 时生效
func (is *InputSystem) InjectUse() {
	is.usePending = true
}

// SetControl 外部注入按键控制状态
func (is *InputSystem) SetControl(c ControlState) {
	is.state.Controls = c
	is.controlsInjected = true
}

// SetJoystick 外部注入摇杆向量
func (is *InputSystem) SetJoystick(x, y float64, active bool) {
	is.state.JoyX = clampAxis(x)
	is.state.JoyY = clampAxis(y)
	is.state.JoyActive = active
	is.joystickInjected = true
}

// SetAim 外部注入触摸瞄准目标（屏幕坐标）
func (is *InputSystem) SetAim(x, y float64, active bool) {
	is.state.AimX = x
	is.state.AimY = y
	is.state.AimActive = active
	is.aimInjected = true
}

// Update 轮询本帧输入
// 外部注入过的通道跳过轮询，保持注入值
func (is *InputSystem) Update(dt float64) {
	if !is.controlsInjected {
		is.state.Controls = ControlState{
			Forward: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			Back:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			Fire:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		}
	}

	if !is.aimInjected {
		// 触摸即瞄准：任意活动触摸点作为瞄准目标
		touchIDs := ebiten.AppendTouchIDs(nil)
		if len(touchIDs) > 0 {
			tx, ty := ebiten.TouchPosition(touchIDs[0])
			is.state.AimX = float64(tx)
			is.state.AimY = float64(ty)
			is.state.AimActive = true
		} else {
			is.state.AimActive = false
		}
	}

	mx, my := ebiten.CursorPosition()
	is.state.PointerX = float64(mx)
	is.state.PointerY = float64(my)

	is.MuteToggled = inpututil.IsKeyJustPressed(ebiten.KeyM)
	is.PauseToggled = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	is.UsePressed = is.usePending || inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	is.usePending = false
}

// clampAxis 把摇杆分量钳制到 [-1,1]
func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
