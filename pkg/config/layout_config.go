package config

import "time"

// 布局与模拟常量
// 所有世界坐标以像素为单位，瓦片尺寸固定

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 540

	// TileSize 单个瓦片的世界尺寸（像素）
	TileSize = 48.0

	// MaxDeltaTime 单帧模拟时间上限（秒）
	// 宿主卡顿（标签页切后台、慢设备）时防止物理失稳
	MaxDeltaTime = 0.05

	// SnapshotInterval 状态快照的最小发送间隔
	SnapshotInterval = 120 * time.Millisecond
)

// 玩家常量
const (
	// PlayerMaxHealth 初始生命上限
	PlayerMaxHealth = 100
	// PlayerHealthCap 护甲可扩展到的生命上限
	PlayerHealthCap = 150
	// PlayerSpeed 移动速度（像素/秒）
	PlayerSpeed = 160.0
	// PlayerRadius 碰撞半径
	PlayerRadius = 12.0
	// PlayerStartAmmo 初始弹药
	PlayerStartAmmo = 60
	// PlayerFireCooldown 射击间隔（秒）
	PlayerFireCooldown = 0.14
	// PlayerBulletDamage 玩家子弹伤害
	PlayerBulletDamage = 22.0
	// PlayerBulletSpeed 玩家子弹速度（像素/秒）
	PlayerBulletSpeed = 520.0
	// BulletLifetime 子弹最大存活时间（秒）
	BulletLifetime = 1.6
)

// 拾取物常量
const (
	// PickupRadius 拾取判定距离
	PickupRadius = 28.0
	// PickupHealthAmount 医疗包回复量
	PickupHealthAmount = 25
	// PickupAmmoAmount 弹药箱补充量
	PickupAmmoAmount = 30
	// PickupArmorAmount 护甲提升的生命上限
	PickupArmorAmount = 10
	// PickupDropChance 敌人死亡掉落概率
	PickupDropChance = 0.18
)

// 波次常量
const (
	// BaseEnemiesPerLevel 每关基础敌人数的基数：8 + levelIndex*4
	BaseEnemiesPerLevel = 8
	// EnemiesPerLevelStep 每关基础敌人数的递增
	EnemiesPerLevelStep = 4
	// WaveCountdown 清波后到下一波的倒计时（秒）
	WaveCountdown = 3.0
	// SpawnMinDistance 刷怪点距玩家的最小距离
	SpawnMinDistance = 250.0
	// SpawnSampleAttempts 刷怪点拒绝采样的尝试上限
	SpawnSampleAttempts = 50
	// LevelStartPickups 关卡开始时撒布的拾取物数量
	LevelStartPickups = 4
	// ExitLingerTime 玩家站上出口到进关的停留时长（秒）
	ExitLingerTime = 0.75
)

// 效果池常量
const (
	// ParticlePoolCap 粒子池硬上限，超出时最旧条目被挤出
	ParticlePoolCap = 600
	// DecalPoolCap 贴花池硬上限
	DecalPoolCap = 160
	// LightPoolCap 动态光源池硬上限
	LightPoolCap = 64
)

// 摄像机常量
const (
	// CameraSmoothing 指数平滑系数（每秒）
	CameraSmoothing = 6.0
	// CameraMaxStep 单帧插值系数钳制上限
	CameraMaxStep = 1.0
)
