package render

import (
	"math"
	"testing"

	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/types"
)

// 光照合成本身需要图形上下文，这里只验证发光体的枚举逻辑

func TestGlowSourcesIncludeLivingEnemies(t *testing.T) {
	store := entities.NewStore(entities.NewPlayer(100, 100, 0))
	store.Enemies = append(store.Enemies,
		&entities.Enemy{X: 200, Y: 120, Radius: 14, Alive: true},
		&entities.Enemy{X: 260, Y: 120, Radius: 20, Alive: false},
	)
	store.Pickups = append(store.Pickups,
		entities.NewPickup(types.PickupHealth, 300, 140, 0),
	)

	specs := glowSources(store)
	if len(specs) != 2 {
		t.Fatalf("expected pickup + living enemy = 2 glow sources, got %d", len(specs))
	}

	enemy := specs[1]
	if enemy.x != 200 || enemy.y != 120 {
		t.Errorf("enemy glow at (%.0f,%.0f), want (200,120)", enemy.x, enemy.y)
	}
	if math.Abs(enemy.radius-14*2.5) > 1e-9 {
		t.Errorf("enemy glow radius %.1f, want %.1f", enemy.radius, 14*2.5)
	}
	if enemy.intensity >= specs[0].intensity {
		t.Error("enemy glow must be fainter than pickup glow")
	}
}

func TestGlowSourcesSkipCollectedPickups(t *testing.T) {
	store := entities.NewStore(entities.NewPlayer(100, 100, 0))
	pk := entities.NewPickup(types.PickupAmmo, 300, 140, 0)
	pk.Collected = true
	store.Pickups = append(store.Pickups, pk)

	if specs := glowSources(store); len(specs) != 0 {
		t.Errorf("collected pickup must not glow, got %d sources", len(specs))
	}
}
