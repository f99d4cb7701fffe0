package effects

import (
	"math/rand"
	"testing"

	"github.com/gonewx/deadzone/pkg/types"
)

// TestPool_ParticleCapacity 粒子池长度在每次更新后不超过容量
func TestPool_ParticleCapacity(t *testing.T) {
	pool := NewPoolWithCaps(10, 5, 4)

	for i := 0; i < 50; i++ {
		pool.AddParticle(&Particle{Life: 1, MaxLife: 1})
		if len(pool.Particles) > 10 {
			t.Fatalf("Particle pool exceeded cap: %d", len(pool.Particles))
		}
	}
	if len(pool.Particles) != 10 {
		t.Errorf("Expected pool at cap 10, got %d", len(pool.Particles))
	}

	pool.Update(0.016)
	if len(pool.Particles) > 10 {
		t.Errorf("Pool exceeded cap after update: %d", len(pool.Particles))
	}
}

// TestPool_OldestEvictedFirst 容量超限时最旧条目先被挤出
func TestPool_OldestEvictedFirst(t *testing.T) {
	pool := NewPoolWithCaps(3, 3, 3)

	first := &Particle{Life: 1, MaxLife: 1, Size: 111}
	pool.AddParticle(first)
	pool.AddParticle(&Particle{Life: 1, MaxLife: 1})
	pool.AddParticle(&Particle{Life: 1, MaxLife: 1})
	pool.AddParticle(&Particle{Life: 1, MaxLife: 1})

	for _, p := range pool.Particles {
		if p == first {
			t.Error("Oldest particle should have been evicted")
		}
	}
}

// TestPool_DecalCapacity 贴花池同样有界
func TestPool_DecalCapacity(t *testing.T) {
	pool := NewPoolWithCaps(10, 5, 4)

	for i := 0; i < 20; i++ {
		pool.AddDecal(&Decal{Kind: types.DecalBlood, Alpha: 1})
		if len(pool.Decals) > 5 {
			t.Fatalf("Decal pool exceeded cap: %d", len(pool.Decals))
		}
	}
	pool.Update(0.016)
	if len(pool.Decals) > 5 {
		t.Errorf("Decal pool exceeded cap after update: %d", len(pool.Decals))
	}
}

// TestParticle_Expiry 寿命耗尽的粒子被移除
func TestParticle_Expiry(t *testing.T) {
	pool := NewPoolWithCaps(10, 5, 4)
	pool.AddParticle(&Particle{Life: 0.1, MaxLife: 0.1})
	pool.AddParticle(&Particle{Life: 1.0, MaxLife: 1.0})

	pool.Update(0.2)
	if len(pool.Particles) != 1 {
		t.Errorf("Expected 1 surviving particle, got %d", len(pool.Particles))
	}
}

// TestParticle_EulerIntegration 位置和速度按欧拉法推进
func TestParticle_EulerIntegration(t *testing.T) {
	p := &Particle{X: 0, Y: 0, VX: 100, VY: 0, Gravity: 50, Life: 1, MaxLife: 1}
	p.update(0.1)

	if p.X != 10 {
		t.Errorf("X = %v, want 10", p.X)
	}
	// 重力先作用于速度，再积分位置
	if p.VY != 5 {
		t.Errorf("VY = %v, want 5", p.VY)
	}
	if p.Y != 0.5 {
		t.Errorf("Y = %v, want 0.5", p.Y)
	}
}

// TestDecal_BloodFadesToFloor 血迹淡出到下限后不再消失
func TestDecal_BloodFadesToFloor(t *testing.T) {
	pool := NewPoolWithCaps(10, 5, 4)
	blood := &Decal{Kind: types.DecalBlood, Alpha: 1}
	pool.AddDecal(blood)

	// 远超完全淡出所需的时间
	for i := 0; i < 10000; i++ {
		pool.Update(0.05)
	}

	if len(pool.Decals) != 1 {
		t.Fatal("Blood decal should persist")
	}
	if blood.Alpha != bloodAlphaFloor {
		t.Errorf("Blood alpha = %v, want floor %v", blood.Alpha, bloodAlphaFloor)
	}
}

// TestDecal_ScorchFadesOut 非血迹贴花可以完全淡出并移除
func TestDecal_ScorchFadesOut(t *testing.T) {
	pool := NewPoolWithCaps(10, 5, 4)
	pool.AddDecal(&Decal{Kind: types.DecalScorch, Alpha: 0.1})

	for i := 0; i < 200; i++ {
		pool.Update(0.05)
	}
	if len(pool.Decals) != 0 {
		t.Errorf("Scorch decal should fade out entirely, %d left", len(pool.Decals))
	}
}

// TestLight_IntensityDecay 光强随剩余寿命比例线性衰减
func TestLight_IntensityDecay(t *testing.T) {
	l := &Light{Intensity: 1.0, Life: 0.5, MaxLife: 1.0}
	if got := l.CurrentIntensity(); got != 0.5 {
		t.Errorf("CurrentIntensity = %v, want 0.5", got)
	}

	l.Life = 0
	if got := l.CurrentIntensity(); got != 0 {
		t.Errorf("Expired light intensity = %v, want 0", got)
	}
}

// TestLight_ExpiryAndCap 光源过期移除且池有界
func TestLight_ExpiryAndCap(t *testing.T) {
	pool := NewPoolWithCaps(10, 5, 4)
	for i := 0; i < 10; i++ {
		pool.AddLight(&Light{Life: 0.1, MaxLife: 0.1})
		if len(pool.Lights) > 4 {
			t.Fatalf("Light pool exceeded cap: %d", len(pool.Lights))
		}
	}

	pool.Update(0.2)
	if len(pool.Lights) != 0 {
		t.Errorf("All lights should expire, %d left", len(pool.Lights))
	}
}

// TestBursts_RespectCaps 效果工厂大量触发时池仍有界
func TestBursts_RespectCaps(t *testing.T) {
	pool := NewPoolWithCaps(50, 8, 6)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 40; i++ {
		pool.SpawnDeathBurst(rng, 100, 100, 14)
		pool.SpawnWallHit(rng, 50, 50)
		pool.SpawnMuzzleFlash(rng, 10, 10, 0)

		if len(pool.Particles) > 50 {
			t.Fatalf("Particle pool exceeded cap: %d", len(pool.Particles))
		}
		if len(pool.Decals) > 8 {
			t.Fatalf("Decal pool exceeded cap: %d", len(pool.Decals))
		}
		if len(pool.Lights) > 6 {
			t.Fatalf("Light pool exceeded cap: %d", len(pool.Lights))
		}
	}
}
