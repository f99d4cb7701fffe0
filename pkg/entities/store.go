package entities

// Store 是模拟的可变实体状态：玩家、敌人、子弹、拾取物
// 引擎实例独占持有，各系统在每个 tick 内串行读写；
// 没有并发访问，所有清理都在 tick 末尾的压缩遍历中完成
type Store struct {
	Player  *Player
	Enemies []*Enemy
	Bullets []*Bullet
	Pickups []*Pickup
}

// NewStore 创建空的实体存储
func NewStore(player *Player) *Store {
	return &Store{
		Player:  player,
		Enemies: make([]*Enemy, 0, 64),
		Bullets: make([]*Bullet, 0, 128),
		Pickups: make([]*Pickup, 0, 16),
	}
}

// LivingEnemyCount 返回存活敌人数，波次推进的判定依据
func (s *Store) LivingEnemyCount() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Compact 移除死亡敌人、耗尽的子弹和已收集的拾取物
// 每个 tick 末尾调用一次；原地过滤保持切片顺序稳定，
// 使 O(n·m) 碰撞检查的遍历顺序可复现
func (s *Store) Compact() {
	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	s.Enemies = enemies

	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Life > 0 {
			bullets = append(bullets, b)
		}
	}
	s.Bullets = bullets

	pickups := s.Pickups[:0]
	for _, p := range s.Pickups {
		if !p.Collected {
			pickups = append(pickups, p)
		}
	}
	s.Pickups = pickups
}

// Reset 清空动态实体并重置玩家位姿（重开关卡 / 下一关时复用存储）
func (s *Store) Reset(player *Player) {
	s.Player = player
	s.Enemies = s.Enemies[:0]
	s.Bullets = s.Bullets[:0]
	s.Pickups = s.Pickups[:0]
}
