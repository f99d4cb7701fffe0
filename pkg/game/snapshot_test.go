package game

import (
	"testing"
	"time"
)

// TestSnapshotPublisher_Throttle 非强制快照按间隔节流
func TestSnapshotPublisher_Throttle(t *testing.T) {
	var received []Snapshot
	p := NewSnapshotPublisher(func(s Snapshot) {
		received = append(received, s)
	})

	clock := time.Unix(0, 0)
	p.SetClock(func() time.Time { return clock })

	// 首次发送总是通过
	if !p.Publish(Snapshot{Wave: 1}, false) {
		t.Fatal("First publish should pass")
	}

	// 间隔不足时被节流
	clock = clock.Add(50 * time.Millisecond)
	if p.Publish(Snapshot{Wave: 2}, false) {
		t.Error("Publish within interval should be throttled")
	}

	// 间隔足够后通过
	clock = clock.Add(100 * time.Millisecond)
	if !p.Publish(Snapshot{Wave: 3}, false) {
		t.Error("Publish after interval should pass")
	}

	if len(received) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(received))
	}
	if received[1].Wave != 3 {
		t.Errorf("Expected wave 3 in second snapshot, got %d", received[1].Wave)
	}
}

// TestSnapshotPublisher_Force 强制发送绕过节流
func TestSnapshotPublisher_Force(t *testing.T) {
	count := 0
	p := NewSnapshotPublisher(func(Snapshot) { count++ })

	clock := time.Unix(0, 0)
	p.SetClock(func() time.Time { return clock })

	p.Publish(Snapshot{}, false)
	if !p.Publish(Snapshot{}, true) {
		t.Error("Forced publish should bypass throttling")
	}
	if count != 2 {
		t.Errorf("Expected 2 deliveries, got %d", count)
	}
}

// TestSnapshotPublisher_NilListener 无宿主时丢弃快照
func TestSnapshotPublisher_NilListener(t *testing.T) {
	p := NewSnapshotPublisher(nil)
	if p.Publish(Snapshot{}, true) {
		t.Error("Publish without listener should report false")
	}
}

// TestGameState_GameOverOnce gameover 转换只发生一次
func TestGameState_GameOverOnce(t *testing.T) {
	gs := NewGameState()
	gs.Status = StatusRunning

	if !gs.TransitionGameOver() {
		t.Fatal("First transition should succeed")
	}
	if gs.TransitionGameOver() {
		t.Error("Second transition must be rejected")
	}
	if gs.Status != StatusGameOver {
		t.Errorf("Status = %v, want gameover", gs.Status)
	}
}

// TestGameState_ShakeClamp 震动强度封顶并衰减到 0
func TestGameState_ShakeClamp(t *testing.T) {
	gs := NewGameState()
	gs.AddShake(0.7)
	gs.AddShake(0.7)
	if gs.ShakeTrauma != 1 {
		t.Errorf("ShakeTrauma = %v, want clamp at 1", gs.ShakeTrauma)
	}

	for i := 0; i < 100; i++ {
		gs.DecayShake(0.05)
	}
	if gs.ShakeTrauma != 0 {
		t.Errorf("ShakeTrauma = %v, want 0 after decay", gs.ShakeTrauma)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusLoading, "loading"},
		{StatusReady, "ready"},
		{StatusRunning, "running"},
		{StatusGameOver, "gameover"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
