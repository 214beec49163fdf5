package world

import (
	"math/rand"
	"testing"

	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/entity"
	"github.com/tomz197/slither-sprint/internal/physics"
)

func newTestWorld(seed int64) (*World, *config.Config) {
	cfg := config.Default()
	pane := entity.Pane{ID: entity.Player1, Bounds: physics.NewRect(0, 0, cfg.PaneWidth, 0)}
	return New(pane, &cfg, rand.New(rand.NewSource(seed))), &cfg
}

func TestResetSeedsInitialEntities(t *testing.T) {
	w, cfg := newTestWorld(1)
	w.Reset()

	if len(w.Obstacles) == 0 {
		t.Fatal("reset should seed obstacles")
	}
	if len(w.Collectibles) == 0 {
		t.Fatal("reset should seed collectibles")
	}
	if len(w.Collectibles) > cfg.SeedCollectibles {
		t.Errorf("seeded %d collectibles, cap is %d", len(w.Collectibles), cfg.SeedCollectibles)
	}
	if w.CameraY != 0 {
		t.Errorf("camera after reset = %g, want 0", w.CameraY)
	}
}

func TestSpawnSequenceIsDeterministicUnderSeed(t *testing.T) {
	w1, _ := newTestWorld(42)
	w2, _ := newTestWorld(42)
	w1.Reset()
	w2.Reset()

	for i := 0; i < 50; i++ {
		w1.FollowCamera(float64(i) * 10)
		w2.FollowCamera(float64(i) * 10)
		w1.Update(0.016)
		w2.Update(0.016)
	}

	if len(w1.Obstacles) != len(w2.Obstacles) {
		t.Fatalf("obstacle counts diverged: %d vs %d", len(w1.Obstacles), len(w2.Obstacles))
	}
	for i := range w1.Obstacles {
		if w1.Obstacles[i].Box != w2.Obstacles[i].Box {
			t.Fatalf("obstacle %d diverged: %+v vs %+v", i, w1.Obstacles[i].Box, w2.Obstacles[i].Box)
		}
	}
	if len(w1.Collectibles) != len(w2.Collectibles) {
		t.Fatalf("collectible counts diverged: %d vs %d", len(w1.Collectibles), len(w2.Collectibles))
	}
	for i := range w1.Collectibles {
		if w1.Collectibles[i].Box != w2.Collectibles[i].Box || w1.Collectibles[i].Kind != w2.Collectibles[i].Kind {
			t.Fatalf("collectible %d diverged", i)
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	w, _ := newTestWorld(9)
	w.FollowCamera(200)
	top := w.Top()
	w.Update(0.016)

	if len(w.Obstacles)+len(w.Collectibles) == 0 {
		t.Fatal("expected spawns once camera moved")
	}
	for _, o := range w.Obstacles {
		if o.Box.Y <= top {
			t.Errorf("obstacle spawned at y=%g, below visible top %g", o.Box.Y, top)
		}
		if o.Box.X < w.Pane.Bounds.X || o.Box.Right() > w.Pane.Bounds.Right() {
			t.Errorf("obstacle outside pane: %+v", o.Box)
		}
	}
	for _, c := range w.Collectibles {
		if c.Box.Y <= top {
			t.Errorf("collectible spawned at y=%g, below visible top %g", c.Box.Y, top)
		}
	}
}

func TestSpawnNeverOverlapsCollectibleWithObstacle(t *testing.T) {
	w, _ := newTestWorld(17)
	w.Reset()
	for i := 0; i < 300; i++ {
		w.FollowCamera(float64(i) * 4)
		w.Update(0.016)
	}

	for _, o := range w.Obstacles {
		for _, c := range w.Collectibles {
			if o.Box.Intersects(c.Box) {
				t.Fatalf("obstacle %+v overlaps collectible %+v", o.Box, c.Box)
			}
		}
	}
}

func TestCullDropsScrolledOutAndConsumed(t *testing.T) {
	w, _ := newTestWorld(5)
	w.Obstacles = append(w.Obstacles,
		&entity.Obstacle{PaneID: entity.Player1, Box: physics.NewRect(0, 10, 1, 1)},
		&entity.Obstacle{PaneID: entity.Player1, Box: physics.NewRect(0, 100, 1, 1)},
	)
	w.Collectibles = append(w.Collectibles,
		&entity.Collectible{PaneID: entity.Player1, Box: physics.NewRect(2, 10, 1, 1)},
		&entity.Collectible{PaneID: entity.Player1, Box: physics.NewRect(2, 100, 1, 1)},
		&entity.Collectible{PaneID: entity.Player1, Box: physics.NewRect(4, 100, 1, 1), Consumed: true},
	)

	w.FollowCamera(60) // camera bottom rises past y=11
	w.Cull()

	if len(w.Obstacles) != 1 || w.Obstacles[0].Box.Y != 100 {
		t.Fatalf("expected only the high obstacle to survive, got %d", len(w.Obstacles))
	}
	if len(w.Collectibles) != 1 || w.Collectibles[0].Box.Y != 100 || w.Collectibles[0].Consumed {
		t.Fatalf("expected only the live high collectible to survive, got %d", len(w.Collectibles))
	}
}

func TestCameraIsMonotonic(t *testing.T) {
	w, _ := newTestWorld(2)
	w.FollowCamera(100)
	cam := w.CameraY
	if cam <= 0 {
		t.Fatal("camera should follow the head upward")
	}
	w.FollowCamera(50)
	if w.CameraY != cam {
		t.Fatalf("camera scrolled backward: %g -> %g", cam, w.CameraY)
	}
	w.FollowCamera(200)
	if w.CameraY <= cam {
		t.Fatal("camera should keep rising with the head")
	}
}

func TestCollectibleCapIsRespected(t *testing.T) {
	w, cfg := newTestWorld(11)
	w.Reset()
	for i := 0; i < 500; i++ {
		w.FollowCamera(float64(i) * 6)
		w.Update(0.016)
	}
	if len(w.Collectibles) > cfg.MaxCollectibles {
		t.Fatalf("live collectibles %d exceed cap %d", len(w.Collectibles), cfg.MaxCollectibles)
	}
}
