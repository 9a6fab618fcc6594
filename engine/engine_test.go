package engine

import (
	"errors"
	"math"
	"testing"

	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/content"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/systems"
)

const (
	tick       = 1.0 / 60
	testWidth  = 800
	testHeight = 600
)

type recordingSound struct {
	played []cfg.SoundID
}

func (r *recordingSound) Play(id cfg.SoundID) {
	r.played = append(r.played, id)
}

func (r *recordingSound) count(id cfg.SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

type recordingLinker struct {
	opened []string
}

func (l *recordingLinker) Open(url string) error {
	l.opened = append(l.opened, url)
	return nil
}

func solid(id string, kind level.Kind, x, y, w, h float64) level.Entity {
	return level.Entity{ID: id, Kind: kind, X: x, Y: y, W: w, H: h, Active: true, Solid: true}
}

func floor() level.Entity {
	return solid("floor", level.KindGround, -100, 500, 3000, 50)
}

func newTestEngine(t *testing.T, data *level.Data) (*Engine, *recordingSound) {
	t.Helper()
	rec := &recordingSound{}
	e, err := New(Options{Width: testWidth, Height: testHeight, Sound: rec, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.LoadLevel(data)
	return e, rec
}

func playing(t *testing.T, entities ...level.Entity) (*Engine, *recordingSound) {
	t.Helper()
	e, rec := newTestEngine(t, &level.Data{Entities: entities})
	if !e.StartGame() {
		t.Fatal("StartGame refused in intro")
	}
	return e, rec
}

func TestNewWithoutSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero", 0, 0},
		{"no width", 0, 600},
		{"negative height", 800, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{Width: tt.width, Height: tt.height})
			if !errors.Is(err, ErrNoSurface) {
				t.Errorf("got %v, want ErrNoSurface", err)
			}
		})
	}
}

func TestUnloadedEngineIsInert(t *testing.T) {
	e, err := New(Options{Width: testWidth, Height: testHeight})
	if err != nil {
		t.Fatal(err)
	}
	e.Update(tick)
	e.HandleInput(Input{Right: true})
	e.Render(nil)
	if e.StartGame() || e.WarpTo("about") || e.HandleVictoryClick(1, 1) {
		t.Error("unloaded engine acted on a request")
	}
	if e.Loaded() {
		t.Error("Loaded before LoadLevel")
	}
}

func TestSettlesOnGround(t *testing.T) {
	e, _ := playing(t, floor())

	want := 500 - cfg.Player.Height
	settled := -1
	for i := 0; i < 300; i++ {
		e.Update(tick)
		p := e.State().Player
		if p.Y == want && p.VY == 0 {
			settled = i
			break
		}
	}
	if settled < 0 {
		t.Fatalf("player never came to rest, at y=%v", e.State().Player.Y)
	}
	for i := 0; i < 60; i++ {
		e.Update(tick)
		p := e.State().Player
		if p.Y != want || p.VY != 0 {
			t.Fatalf("tick %d after settling: y=%v vy=%v", i, p.Y, p.VY)
		}
	}
}

func TestFrictionBringsPlayerToRest(t *testing.T) {
	e, _ := playing(t, floor())
	player := systems.GetPlayer(e.ecs)
	player.Y = 500 - player.H
	player.VX = cfg.Player.MaxSpeed

	prev := math.Abs(player.VX)
	for i := 0; i < 200; i++ {
		e.Update(tick)
		cur := math.Abs(e.State().Player.VX)
		if cur == 0 {
			return
		}
		if cur >= prev {
			t.Fatalf("tick %d: |vx| went from %v to %v", i, prev, cur)
		}
		prev = cur
	}
	t.Fatalf("player still sliding at |vx|=%v", prev)
}

func TestAxisSeparatedCollision(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		vx, vy     float64
		dt         float64
		wantX      float64 // NaN when x must keep moving
		wantY      float64 // NaN when y must keep moving
		stoppedOnX bool
	}{
		{
			name: "falling onto the block's corner lands",
			x:    262, y: 358, vx: 100, vy: 120, dt: tick,
			wantX: math.NaN(), wantY: 360,
		},
		{
			name: "running into the block's side stops x only",
			x:    259, y: 420, vx: 100, vy: 0, dt: tick,
			wantX: 260, wantY: math.NaN(), stoppedOnX: true,
		},
		{
			name: "large step into the side does not tunnel",
			x:    255, y: 420, vx: cfg.Player.MaxSpeed, vy: 0, dt: cfg.Physics.MaxDeltaTime,
			wantX: 260, wantY: math.NaN(), stoppedOnX: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := playing(t, solid("block", level.KindBrick, 300, 400, 50, 100))
			player := systems.GetPlayer(e.ecs)
			player.X, player.Y, player.VX, player.VY = tt.x, tt.y, tt.vx, tt.vy

			e.Update(tt.dt)
			p := e.State().Player

			if tt.stoppedOnX {
				if p.X != tt.wantX || p.VX != 0 {
					t.Errorf("x=%v vx=%v, want x=%v vx=0", p.X, p.VX, tt.wantX)
				}
				if p.VY <= 0 {
					t.Errorf("vertical motion stopped too: vy=%v", p.VY)
				}
				return
			}
			if p.Y != tt.wantY || p.VY != 0 {
				t.Errorf("y=%v vy=%v, want y=%v vy=0", p.Y, p.VY, tt.wantY)
			}
			if p.VX <= 0 || p.X <= tt.x {
				t.Errorf("horizontal motion stopped too: x=%v vx=%v", p.X, p.VX)
			}
		})
	}
}

func TestPhaseTransitionsNeedExplicitCalls(t *testing.T) {
	e, rec := newTestEngine(t, &level.Data{Entities: []level.Entity{floor()}})

	if e.HandleVictoryAction(cfg.ActionRestart) {
		t.Error("victory action accepted in intro")
	}
	for i := 0; i < 10; i++ {
		e.Update(tick)
	}
	if e.Phase() != cfg.PhaseIntro {
		t.Fatalf("left intro early: %v", e.Phase())
	}

	if !e.StartGame() {
		t.Fatal("StartGame refused")
	}
	if e.StartGame() {
		t.Error("second StartGame accepted")
	}
	if got := rec.count(cfg.SoundCoin); got != 1 {
		t.Errorf("start played %d coin sounds, want 1", got)
	}
	for i := 0; i < 120; i++ {
		e.Update(tick)
	}
	if e.Phase() != cfg.PhasePlaying {
		t.Errorf("phase %v, want playing", e.Phase())
	}
}

func TestIntroAutoStart(t *testing.T) {
	e, _ := newTestEngine(t, &level.Data{Entities: []level.Entity{floor()}})

	step := cfg.Physics.MaxDeltaTime
	before := int(cfg.Phase.IntroAutoStart/step) - 2
	for i := 0; i < before; i++ {
		e.Update(step)
	}
	if e.Phase() != cfg.PhaseIntro {
		t.Fatalf("auto-started after %d ticks", before)
	}
	for i := 0; i < 5; i++ {
		e.Update(step)
	}
	if e.Phase() != cfg.PhasePlaying {
		t.Errorf("phase %v after timer elapsed, want playing", e.Phase())
	}
}

func TestDtIsClamped(t *testing.T) {
	e, _ := playing(t)
	e.Update(5)
	p := e.State().Player
	want := cfg.Physics.Gravity * cfg.Physics.MaxDeltaTime
	if math.Abs(p.VY-want) > 1e-9 {
		t.Errorf("vy=%v after a long frame, want %v", p.VY, want)
	}

	e.Update(-1)
	if got := e.State().Player.VY; got != p.VY {
		t.Errorf("negative dt changed vy: %v -> %v", p.VY, got)
	}
}

func TestInputIgnoredOutsidePlaying(t *testing.T) {
	e, rec := newTestEngine(t, &level.Data{Entities: []level.Entity{floor()}})
	e.HandleInput(Input{Right: true, Jump: true})
	if p := e.State().Player; p.VX != 0 || p.VY != 0 {
		t.Errorf("intro input moved the player: vx=%v vy=%v", p.VX, p.VY)
	}
	if len(rec.played) != 0 {
		t.Errorf("intro input played %v", rec.played)
	}
}

func TestJumpOnlyFromRest(t *testing.T) {
	e, rec := playing(t, floor())
	player := systems.GetPlayer(e.ecs)
	player.Y = 500 - player.H

	e.HandleInput(Input{Jump: true})
	if player.VY != cfg.Player.JumpImpulse {
		t.Fatalf("vy=%v, want jump impulse", player.VY)
	}
	e.Update(tick)
	e.HandleInput(Input{Jump: true})
	if got := rec.count(cfg.SoundJump); got != 1 {
		t.Errorf("jump sounds=%d, want 1 (no jumping mid-air)", got)
	}
}

func TestOpposingInputCancels(t *testing.T) {
	e, _ := playing(t, floor())
	e.HandleInput(Input{Right: true})
	e.HandleInput(Input{Right: true})
	e.HandleInput(Input{Left: true, Right: true})
	want := 2 * cfg.Player.MoveAccel
	if got := e.State().Player.VX; got != want {
		t.Errorf("vx=%v, want %v", got, want)
	}

	for i := 0; i < 100; i++ {
		e.HandleInput(Input{Right: true})
	}
	if got := e.State().Player.VX; got != cfg.Player.MaxSpeed {
		t.Errorf("vx=%v, want clamp at %v", got, cfg.Player.MaxSpeed)
	}
}

func TestCoinPaysOnce(t *testing.T) {
	coin := level.Entity{ID: "coin", Kind: level.KindCoin, X: 100, Y: 20, W: 30, H: 30, Active: true}
	e, rec := playing(t, floor(), coin)

	e.Update(tick)
	got, _ := e.Entity("coin")
	if got.Active {
		t.Fatal("coin still active after overlap")
	}
	s := e.State()
	if s.Score != cfg.Score.Coin || s.Coins != 1 || s.Achievements != 1 {
		t.Errorf("score=%d coins=%d achievements=%d", s.Score, s.Coins, s.Achievements)
	}

	for i := 0; i < 30; i++ {
		e.Update(tick)
	}
	if s := e.State(); s.Score != cfg.Score.Coin {
		t.Errorf("coin paid again: score=%d", s.Score)
	}
	// One for starting, one for the coin
	if n := rec.count(cfg.SoundCoin); n != 2 {
		t.Errorf("coin sounds=%d, want 2", n)
	}
}

func TestQuestionBlockFlipsOnce(t *testing.T) {
	q := solid("q", level.KindQuestion, 95, 380, 50, 50)
	q.Content = "Shipped it"
	e, rec := playing(t, floor(), q)
	player := systems.GetPlayer(e.ecs)
	player.X, player.Y = 100, 500-player.H

	for i := 0; i < 240; i++ {
		e.HandleInput(Input{Jump: true})
		e.Update(tick)
	}

	got, _ := e.Entity("q")
	if got.Kind != level.KindUsed {
		t.Fatalf("block kind %v, want used", got.Kind)
	}
	s := e.State()
	if s.Score != cfg.Score.QuestionBlock || s.Achievements != 1 {
		t.Errorf("score=%d achievements=%d after repeated bumps", s.Score, s.Achievements)
	}
	if !got.Active || !got.Solid {
		t.Error("used block should stay a solid obstacle")
	}
	if n := rec.count(cfg.SoundBump); n != 1 {
		t.Errorf("bump sounds=%d, want 1", n)
	}
	// One for starting, one for the payout
	if n := rec.count(cfg.SoundCoin); n != 2 {
		t.Errorf("coin sounds=%d, want 2", n)
	}
}

func TestBrickBreaks(t *testing.T) {
	e, rec := playing(t, floor(), solid("brick", level.KindBrick, 95, 380, 50, 50))
	player := systems.GetPlayer(e.ecs)
	player.X, player.Y = 100, 500-player.H

	e.HandleInput(Input{Jump: true})
	for i := 0; i < 10; i++ {
		e.Update(tick)
	}
	got, _ := e.Entity("brick")
	if got.Active {
		t.Fatal("brick survived a head bump")
	}
	if rec.count(cfg.SoundBreak) != 1 {
		t.Errorf("break sounds=%d, want 1", rec.count(cfg.SoundBreak))
	}
	if rec.count(cfg.SoundBump) != 1 {
		t.Errorf("bump sounds=%d, want 1", rec.count(cfg.SoundBump))
	}
	if e.State().Particles == 0 {
		t.Error("no debris")
	}

	// The broken brick no longer blocks
	for i := 0; i < 120; i++ {
		e.HandleInput(Input{Jump: true})
		e.Update(tick)
		if e.State().Player.Y < 380 {
			return
		}
	}
	t.Error("player never rose past the broken brick")
}

func TestHostileContact(t *testing.T) {
	tests := []struct {
		name     string
		x, y, vy float64
		defeated bool
	}{
		{"stomp from above", 300, 365, 100, true},
		{"walk into the side", 290, 400, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goomba := level.Entity{
				ID: "goomba", Kind: level.KindGoomba, X: 300, Y: 400, W: 40, H: 40, Active: true,
				Label: "LEGACY", DefeatMessage: "Legacy stack retired",
			}
			e, rec := playing(t, goomba)
			player := systems.GetPlayer(e.ecs)
			player.X, player.Y, player.VY = tt.x, tt.y, tt.vy

			e.Update(tick)

			got, _ := e.Entity("goomba")
			s := e.State()
			if got.Active == tt.defeated {
				t.Fatalf("goomba active=%v, want %v", got.Active, !tt.defeated)
			}
			if !tt.defeated {
				if s.Score != 0 || s.Message != "" || s.Player.VX != 0 || s.Player.VY == cfg.Player.StompBounce {
					t.Errorf("harmless contact changed state: %+v", s)
				}
				return
			}
			if s.Player.VY != cfg.Player.StompBounce {
				t.Errorf("vy=%v, want bounce %v", s.Player.VY, cfg.Player.StompBounce)
			}
			if s.Score != cfg.Score.Stomp || s.Message != goomba.DefeatMessage {
				t.Errorf("score=%d message=%q", s.Score, s.Message)
			}
			if len(s.Defeated) != 1 || s.Defeated[0] != goomba.Label {
				t.Errorf("defeated=%v", s.Defeated)
			}
			if rec.count(cfg.SoundBump) != 1 {
				t.Errorf("bump sounds=%d, want 1", rec.count(cfg.SoundBump))
			}
		})
	}
}

func TestPatrolReversesAtBounds(t *testing.T) {
	goomba := level.Entity{
		ID: "goomba", Kind: level.KindGoomba, X: 200, Y: 200, W: 40, H: 40, VX: -60, Active: true,
		PatrolMin: 150, PatrolMax: 300,
	}
	e, _ := playing(t, floor(), goomba)

	var turnedAtMin, turnedAtMax bool
	for i := 0; i < 300; i++ {
		e.Update(tick)
		g, _ := e.Entity("goomba")
		if g.X < goomba.PatrolMin || g.Right() > goomba.PatrolMax {
			t.Fatalf("tick %d: left the patrol span at x=%v", i, g.X)
		}
		if g.X == goomba.PatrolMin && g.VX > 0 {
			turnedAtMin = true
		}
		if g.Right() == goomba.PatrolMax && g.VX < 0 {
			turnedAtMax = true
		}
	}
	if !turnedAtMin || !turnedAtMax {
		t.Errorf("reversed at min=%v max=%v", turnedAtMin, turnedAtMax)
	}
}

func TestPowerUpPickup(t *testing.T) {
	tests := []struct {
		name      string
		grant     level.Grant
		score     int
		unlocked  []string
		hasHammer bool
	}{
		{"skill", level.GrantNone, cfg.Score.PowerUp, []string{"AI TOOLING"}, false},
		{"hammer", level.GrantHammer, cfg.Score.Hammer, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := level.Entity{
				ID: "power", Kind: level.KindMushroom, X: 100, Y: 20, W: 40, H: 40, Active: true,
				Label: "AI TOOLING", Content: "Power-up collected", Grant: tt.grant,
			}
			e, rec := playing(t, floor(), p)
			for i := 0; i < 10; i++ {
				e.Update(tick)
			}

			got, _ := e.Entity("power")
			s := e.State()
			if got.Active {
				t.Error("power-up still active")
			}
			if s.Score != tt.score || s.HasHammer != tt.hasHammer {
				t.Errorf("score=%d hammer=%v", s.Score, s.HasHammer)
			}
			if len(s.Unlocked) != len(tt.unlocked) || (len(tt.unlocked) > 0 && s.Unlocked[0] != tt.unlocked[0]) {
				t.Errorf("unlocked=%v, want %v", s.Unlocked, tt.unlocked)
			}
			if s.Message != p.Content {
				t.Errorf("message=%q", s.Message)
			}
			if rec.count(cfg.SoundPowerup) != 1 {
				t.Errorf("powerup sounds=%d, want 1", rec.count(cfg.SoundPowerup))
			}
		})
	}
}

func TestParticlesExpire(t *testing.T) {
	e, _ := playing(t, floor())
	systems.SpawnBurst(e.ecs, 400, 300, cfg.Gold)
	if n := e.State().Particles; n != cfg.Particles.BurstCount {
		t.Fatalf("particles=%d, want %d", n, cfg.Particles.BurstCount)
	}

	ticks := int(cfg.Particles.BurstLife / tick)
	for i := 0; i < ticks-5; i++ {
		e.Update(tick)
	}
	if n := e.State().Particles; n != cfg.Particles.BurstCount {
		t.Fatalf("particles pruned early: %d left", n)
	}
	for i := 0; i < 10; i++ {
		e.Update(tick)
	}
	if n := e.State().Particles; n != 0 {
		t.Errorf("particles=%d after their life ran out", n)
	}
}

func TestCameraEasesTowardLead(t *testing.T) {
	lead := cfg.Camera.LeadFraction * testWidth
	tests := []struct {
		name    string
		playerX float64
		first   float64
		settled float64
	}{
		{"eases toward lead", 1000, (1000 - lead) * cfg.Camera.FollowSmoothing, 1000 - lead},
		{"clamped at origin", 50, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := playing(t, floor())
			player := systems.GetPlayer(e.ecs)
			player.X, player.Y = tt.playerX, 500-player.H

			e.Update(tick)
			if got := e.State().CameraX; math.Abs(got-tt.first) > 1e-9 {
				t.Errorf("camera after one tick=%v, want %v", got, tt.first)
			}
			for i := 0; i < 300; i++ {
				e.Update(tick)
			}
			if got := e.State().CameraX; math.Abs(got-tt.settled) > 1 {
				t.Errorf("camera settled at %v, want %v", got, tt.settled)
			}
		})
	}
}

func TestAllFlagsBonus(t *testing.T) {
	flag := func(id, code string, y float64) level.Entity {
		return level.Entity{ID: id, Kind: level.KindFlag, X: 100, Y: y, W: 30, H: 30, Active: true, CountryCode: code}
	}
	e, _ := newTestEngine(t, &level.Data{
		Entities:   []level.Entity{floor(), flag("de", "DE", 20), flag("ch", "CH", 150)},
		TotalFlags: 2,
	})
	e.StartGame()

	e.Update(tick)
	s := e.State()
	if s.Flags != 1 || s.Score != cfg.Score.Flag || s.Achievements != 0 || s.Message != "" {
		t.Fatalf("after first flag: flags=%d score=%d achievements=%d message=%q",
			s.Flags, s.Score, s.Achievements, s.Message)
	}

	for i := 0; i < 60; i++ {
		e.Update(tick)
	}
	s = e.State()
	if s.Flags != 2 {
		t.Fatalf("flags=%d, want 2", s.Flags)
	}
	if want := 2*cfg.Score.Flag + cfg.Score.AllFlagsBonus; s.Score != want {
		t.Errorf("score=%d, want %d", s.Score, want)
	}
	if s.Achievements != 1 || s.Message != cfg.Score.AllFlagsMessage {
		t.Errorf("achievements=%d message=%q", s.Achievements, s.Message)
	}
}

func boss() level.Entity {
	return level.Entity{
		ID: "boss", Kind: level.KindGoomba, X: 300, Y: 380, W: 80, H: 80, Active: true, Boss: true,
		Label: "BOSS", DefeatMessage: "Boss down",
	}
}

func TestBossIgnoresStompWithoutHammer(t *testing.T) {
	e, rec := playing(t, floor(), boss())
	player := systems.GetPlayer(e.ecs)
	player.X, player.Y, player.VY = 320, 345, 100

	e.Update(tick)

	got, _ := e.Entity("boss")
	s := e.State()
	if !got.Active {
		t.Fatal("boss went down without the hammer")
	}
	if s.Player.VX != cfg.Boss.KnockbackSpeed || s.Player.VY != cfg.Boss.KnockbackLift {
		t.Errorf("knock back vx=%v vy=%v", s.Player.VX, s.Player.VY)
	}
	if s.Score != 0 || s.Message != cfg.Boss.NeedHammerMessage {
		t.Errorf("score=%d message=%q", s.Score, s.Message)
	}
	if rec.count(cfg.SoundDie) != 1 {
		t.Errorf("die sounds=%d, want 1", rec.count(cfg.SoundDie))
	}
}

func TestBossKnockBackAwayFromBoss(t *testing.T) {
	e, _ := playing(t, floor(), boss())
	player := systems.GetPlayer(e.ecs)
	player.X, player.Y = 270, 420

	e.Update(tick)
	if vx := e.State().Player.VX; vx != -cfg.Boss.KnockbackSpeed {
		t.Errorf("vx=%v, want %v", vx, -cfg.Boss.KnockbackSpeed)
	}
}

func TestHammerDefeatsBoss(t *testing.T) {
	e, rec := playing(t, floor(), boss())
	systems.GetGame(e.ecs).HasHammer = true
	player := systems.GetPlayer(e.ecs)
	player.X, player.Y = 270, 420

	e.Update(tick)
	got, _ := e.Entity("boss")
	if !got.Active {
		t.Fatal("boss should shake before going down")
	}
	if s := e.State(); s.Message != cfg.Boss.StrikeMessage || s.Score != 0 {
		t.Errorf("on strike: score=%d message=%q", s.Score, s.Message)
	}
	if swing := systems.GetGame(e.ecs).HammerSwing; swing != cfg.Boss.SwingDuration {
		t.Errorf("swing=%v, want %v", swing, cfg.Boss.SwingDuration)
	}

	for i := 0; i < int(cfg.Boss.ShakeDuration/tick)+10; i++ {
		e.Update(tick)
	}
	got, _ = e.Entity("boss")
	s := e.State()
	if got.Active {
		t.Fatal("boss survived the shake")
	}
	if s.Score != cfg.Score.Boss || s.Achievements != 1 || s.Message != "Boss down" {
		t.Errorf("score=%d achievements=%d message=%q", s.Score, s.Achievements, s.Message)
	}
	if len(s.Defeated) != 1 || s.Defeated[0] != "BOSS" {
		t.Errorf("defeated=%v", s.Defeated)
	}
	if rec.count(cfg.SoundBump) != 1 || rec.count(cfg.SoundPowerup) != 1 {
		t.Errorf("bump=%d powerup=%d, want 1 each", rec.count(cfg.SoundBump), rec.count(cfg.SoundPowerup))
	}
	if systems.GetGame(e.ecs).HammerSwing != 0 {
		t.Error("hammer still swinging")
	}
}

func TestFallingOffEndsRun(t *testing.T) {
	e, rec := playing(t)
	limit := float64(testHeight) + cfg.Physics.DeathMargin

	for i := 0; i < 600; i++ {
		e.Update(tick)
		p := e.State().Player
		if e.Phase() == cfg.PhaseGameOver {
			if p.Y <= limit {
				t.Fatalf("game over at y=%v, before the death plane", p.Y)
			}
			break
		}
		if p.Y > limit {
			t.Fatalf("tick %d: below the plane at y=%v but still %v", i, p.Y, e.Phase())
		}
	}
	if e.Phase() != cfg.PhaseGameOver {
		t.Fatal("never reached game over")
	}

	y := e.State().Player.Y
	for i := 0; i < 30; i++ {
		e.Update(tick)
	}
	if rec.count(cfg.SoundDie) != 1 {
		t.Errorf("die sounds=%d, want 1", rec.count(cfg.SoundDie))
	}
	if got := e.State().Player.Y; got != y {
		t.Errorf("physics ran during game over: y %v -> %v", y, got)
	}
	if e.StartGame() {
		t.Error("StartGame accepted after game over")
	}
}

func TestEntitiesBelowPlaneDeactivate(t *testing.T) {
	drop := level.Entity{ID: "drop", Kind: level.KindScenery, X: 5000, Y: 0, W: 10, H: 10, Active: true, Gravity: true}
	e, _ := playing(t, floor(), drop)
	for i := 0; i < 300; i++ {
		e.Update(tick)
	}
	got, _ := e.Entity("drop")
	if got.Active {
		t.Error("falling scenery never deactivated")
	}
	if e.Phase() != cfg.PhasePlaying {
		t.Errorf("phase %v, only the player ends the run", e.Phase())
	}
}

func victoryLevel() []level.Entity {
	return []level.Entity{floor(), solid("castle", level.KindCastle, 600, 300, 150, 200)}
}

// reachGoal drops the player against the castle and runs the tick that touches it.
func reachGoal(t *testing.T, e *Engine) {
	t.Helper()
	player := systems.GetPlayer(e.ecs)
	player.X, player.Y = 580, 500-player.H
	e.HandleInput(Input{Right: true})
	e.Update(tick)
	if e.Phase() != cfg.PhaseVictory {
		t.Fatalf("phase %v, want victory", e.Phase())
	}
}

func TestGoalFreezesPlayer(t *testing.T) {
	e, _ := playing(t, victoryLevel()...)
	reachGoal(t, e)

	frozen := e.State().Player
	sawFireworks := false
	for i := 0; i < 200; i++ {
		e.HandleInput(Input{Right: true, Jump: true})
		e.Update(tick)
		if e.State().Particles > 0 {
			sawFireworks = true
		}
	}
	p := e.State().Player
	if p.X != frozen.X || p.Y != frozen.Y {
		t.Errorf("player moved during victory: (%v,%v) -> (%v,%v)", frozen.X, frozen.Y, p.X, p.Y)
	}
	if !sawFireworks {
		t.Error("no fireworks during victory")
	}
	if v := systems.GetVictory(e.ecs); v.Alpha != 1 {
		t.Errorf("overlay alpha %v after fade, want 1", v.Alpha)
	}
}

func TestVictoryLinks(t *testing.T) {
	linker := &recordingLinker{}
	e, err := New(Options{
		Width: testWidth, Height: testHeight,
		Linker: linker,
		Links:  Links{Contact: "mailto:sam@example.com", Resume: "https://example.com/cv.pdf"},
	})
	if err != nil {
		t.Fatal(err)
	}
	e.LoadLevel(&level.Data{Entities: victoryLevel()})
	if e.HandleVictoryAction(cfg.ActionContact) {
		t.Error("action accepted outside victory")
	}
	e.StartGame()
	reachGoal(t, e)

	if !e.HandleVictoryAction(cfg.ActionContact) || !e.HandleVictoryAction(cfg.ActionResume) {
		t.Error("link actions refused")
	}
	if e.HandleVictoryAction(cfg.ActionProfile) {
		t.Error("profile action with no link reported success")
	}
	want := []string{"mailto:sam@example.com", "https://example.com/cv.pdf"}
	if len(linker.opened) != len(want) {
		t.Fatalf("opened %v, want %v", linker.opened, want)
	}
	for i := range want {
		if linker.opened[i] != want[i] {
			t.Errorf("opened[%d]=%q, want %q", i, linker.opened[i], want[i])
		}
	}
	if e.Phase() != cfg.PhaseVictory {
		t.Errorf("link actions changed phase to %v", e.Phase())
	}
}

func TestRestartKeepsArena(t *testing.T) {
	coin := level.Entity{ID: "coin", Kind: level.KindCoin, X: 100, Y: 20, W: 30, H: 30, Active: true}
	e, _ := playing(t, append(victoryLevel(), coin)...)
	e.Update(tick)
	if got, _ := e.Entity("coin"); got.Active {
		t.Fatal("coin not collected")
	}
	reachGoal(t, e)

	if !e.HandleVictoryAction(cfg.ActionRestart) {
		t.Fatal("restart refused")
	}
	s := e.State()
	if s.Phase != cfg.PhaseIntro {
		t.Errorf("phase %v after restart, want intro", s.Phase)
	}
	if s.Score != 0 || s.Achievements != 0 || len(s.Visited) != 0 || s.Coins != 0 {
		t.Errorf("counters not reset: %+v", s)
	}
	if s.Player.X != cfg.Player.SpawnX || s.Player.Y != cfg.Player.SpawnY || s.CameraX != 0 {
		t.Errorf("player at (%v,%v) camera %v after restart", s.Player.X, s.Player.Y, s.CameraX)
	}
	if got, _ := e.Entity("coin"); got.Active {
		t.Error("collected coin came back")
	}
}

func TestVictoryClick(t *testing.T) {
	e, _ := playing(t, victoryLevel()...)
	reachGoal(t, e)

	if e.HandleVictoryClick(-10, -10) {
		t.Error("click outside every button accepted")
	}
	var restart *struct{ x, y float64 }
	for _, b := range systems.VictoryButtons(testWidth, testHeight) {
		if b.Action == cfg.ActionRestart {
			restart = &struct{ x, y float64 }{b.X + b.W/2, b.Y + b.H/2}
		}
	}
	if restart == nil {
		t.Fatal("no restart button")
	}
	if !e.HandleVictoryClick(restart.x, restart.y) {
		t.Fatal("restart click refused")
	}
	if e.Phase() != cfg.PhaseIntro {
		t.Errorf("phase %v, want intro", e.Phase())
	}
}

func TestWarpTo(t *testing.T) {
	data := &level.Data{
		Entities:      []level.Entity{floor()},
		Bookmarks:     map[string]float64{"about": 120, "skills": 1500},
		BookmarkOrder: []string{"about", "skills"},
	}
	e, _ := newTestEngine(t, data)

	if e.WarpTo("nowhere") {
		t.Error("warped to an unknown bookmark")
	}
	if !e.WarpTo("skills") {
		t.Fatal("warp refused")
	}
	s := e.State()
	if s.Player.X != 1500 || s.CameraX != 1500-cfg.Camera.WarpOffset {
		t.Errorf("player x=%v camera x=%v", s.Player.X, s.CameraX)
	}

	e.WarpTo("about")
	if s := e.State(); s.CameraX != 0 {
		t.Errorf("camera x=%v, want clamped to 0", s.CameraX)
	}

	e.StartGame()
	e.Update(tick)
	if s := e.State(); len(s.Visited) != 1 || s.Visited[0] != "about" {
		t.Errorf("visited %v, want [about]", s.Visited)
	}
	if got := e.Bookmarks(); len(got) != 2 || got[1] != "skills" {
		t.Errorf("bookmarks %v", got)
	}
}

func TestResize(t *testing.T) {
	e, _ := playing(t)
	e.Resize(1024, 200)
	e.Resize(0, 0)

	limit := 200 + cfg.Physics.DeathMargin
	for i := 0; i < 600 && e.Phase() == cfg.PhasePlaying; i++ {
		e.Update(tick)
	}
	if y := e.State().Player.Y; y <= limit || y > limit+50 {
		t.Errorf("died at y=%v, want just past %v", y, limit)
	}
}

func TestLoadLevelLeavesInputUntouched(t *testing.T) {
	data := &level.Data{Entities: []level.Entity{floor()}}
	e, _ := newTestEngine(t, data)
	e.StartGame()
	for i := 0; i < 30; i++ {
		e.Update(tick)
	}
	if data.Entities[0].Y != 500 || len(data.Entities) != 1 {
		t.Error("LoadLevel mutated its input")
	}

	e.LoadLevel(data)
	if e.Phase() != cfg.PhaseIntro || e.State().Player.Y != cfg.Player.SpawnY {
		t.Error("reload did not reset the session")
	}
}

type frame struct {
	x, y  float64
	phase cfg.PhaseID
}

func script(t *testing.T) []frame {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEngine(t, level.Generate(p))
	e.StartGame()

	var out []frame
	for i := 0; i < 900; i++ {
		in := Input{Right: i%200 < 150, Jump: i%45 == 0, Left: i%200 >= 180}
		e.HandleInput(in)
		e.Update(tick)
		s := e.State()
		out = append(out, frame{s.Player.X, s.Player.Y, s.Phase})
	}
	return out
}

func TestDeterministicReplay(t *testing.T) {
	a, b := script(t), script(t)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}
