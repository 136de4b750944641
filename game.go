package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/dialogue"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/ecs/entity"
	"github.com/milk9111/riptide/ecs/system"
	"github.com/milk9111/riptide/notify"
	"github.com/milk9111/riptide/prefabs"
)

const fixedDT = 1.0 / 60.0

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	input     *Input
	dialogue  *dialogue.Source
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI

	accumulator float64
	paused      bool
	reload      bool
	debug       bool
}

func NewGame(debug bool) *Game {
	g := &Game{
		input:  NewInput(),
		render: system.NewRenderSystem(),
		debug:  debug,
	}
	g.pauseUI = NewPauseUI(g)

	source, err := dialogue.NewSource()
	if err != nil {
		log.Printf("game: dialogue disabled: %v", err)
	}
	g.dialogue = source

	if watcher, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("game: prefab watching disabled: %v", err)
	}

	g.buildWorld()
	return g
}

// buildWorld loads the prefabs and assembles a fresh world. Called at start
// and again on level reload or prefab edit.
func (g *Game) buildWorld() {
	w := ecs.NewWorld(fixedDT)
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	level, err := prefabs.LoadLevelSpec()
	if err != nil {
		log.Printf("game: level: %v", err)
		g.world = w
		g.scheduler = ecs.NewScheduler()
		return
	}
	if err := entity.BuildLevel(w, level); err != nil {
		log.Printf("game: level terrain: %v", err)
	}

	if playerSpec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("game: player disabled: %v", err)
	} else if _, err := entity.NewPlayer(w, playerSpec, common.Vec2{X: level.PlayerSpawn.X, Y: level.PlayerSpawn.Y}); err != nil {
		log.Printf("game: player disabled: %v", err)
	}

	var tentacleSpec *prefabs.TentacleSpec
	if bossSpec, err := prefabs.LoadBossSpec(); err != nil {
		log.Printf("game: boss disabled: %v", err)
	} else {
		tentacleSpec, err = prefabs.LoadTentacleSpec(bossSpec.Tentacle)
		if err != nil {
			log.Printf("game: boss attacks disabled: %v", err)
		}
		if _, err := entity.NewBoss(w, bossSpec, common.Vec2{X: level.BossSpawn.X, Y: level.BossSpawn.Y}); err != nil {
			log.Printf("game: boss disabled: %v", err)
		}
	}

	if g.dialogue != nil {
		g.dialogue.Finish()
	}

	ports := notify.Ports{
		Audio: logAudio{},
		Host:  g,
	}

	g.world = w
	g.scheduler = ecs.NewScheduler(
		system.NewTimerSystem(),
		system.NewInputSystem(g.input),
		system.NewPlayerSystem(),
		system.NewBossSystem(g.dialogue, tentacleSpec),
		system.NewTentacleSystem(),
		system.NewCombatSystem(),
		system.NewPhysicsSystem(),
		system.NewTTLSystem(),
		system.NewNotifySystem(ports),
	)
	g.accumulator = 0
	g.reload = false
}

// PlayerDied implements notify.Host; the grace period already elapsed inside
// the player's reload timer.
func (g *Game) PlayerDied() {
	g.reload = true
}

func (g *Game) BossDied() {
	log.Println("game: boss defeated")
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case name := <-g.watcher.Events:
			log.Printf("game: prefab %s changed, reloading", name)
			g.reload = true
		default:
		}
	}

	if pausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.reload {
		g.buildWorld()
	}

	g.input.Poll()
	g.accumulator += 1.0 / float64(ebiten.TPS())
	for g.accumulator >= fixedDT {
		g.accumulator -= fixedDT
		g.scheduler.Update(g.world)
		g.input.ClearEdges()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		if player, ok := ecs.First(g.world, component.PlayerKind); ok {
			if p, ok := ecs.Get(g.world, player, component.PlayerKind); ok {
				hit, _ := ecs.Get(g.world, player, component.HittableKind)
				health := 0.0
				if hit != nil {
					health = hit.Health
				}
				ebitenutil.DebugPrint(screen, fmt.Sprintf("state: %s  hp: %.0f  fps: %.1f", p.State, health, ebiten.ActualFPS()))
			}
		}
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// logAudio is the stand-in audio port; cues go to the log until real
// playback lands.
type logAudio struct{}

func (logAudio) Play(cue string) {
	log.Printf("audio: %s", cue)
}
