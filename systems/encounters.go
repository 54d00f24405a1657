package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/tags"
)

// UpdateEncounters resolves player/coin and player/enemy overlaps after
// every body has integrated, then checks level completion. It runs on the
// post-integration positions of the current tick; nothing here moves a
// body through the lattice.
func UpdateEncounters(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Phase != cfg.PhasePlaying {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerPhysics := components.Physics.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry).Object

	collectCoins(ecs, session, playerObj)

	// Each overlapping enemy resolves independently; two simultaneous
	// overlaps are two encounters in query order.
	tags.Koopa.Each(ecs.World, func(e *donburi.Entry) {
		if session.Phase != cfg.PhasePlaying {
			return
		}

		obj := components.Object.Get(e).Object
		if !overlaps(playerObj, obj) {
			return
		}

		switch {
		case playerPhysics.SpeedY > 0 && playerObj.Bottom() < obj.Y+obj.H/2:
			// Falling onto the top half counts as a stomp.
			StompKoopa(ecs, e)
			playerPhysics.SpeedY = cfg.Player.JumpStrength * 0.7
			session.Score += cfg.Score.Stomp

		case player.Mode == cfg.ModeShell:
			direction := cfg.DirectionRight
			if playerPhysics.SpeedX < 0 {
				direction = cfg.DirectionLeft
			}
			KickKoopa(ecs, e, direction)
			session.Score += cfg.Score.Kick

		default:
			hurtPlayer(ecs, session, player, playerPhysics, playerObj)
		}
	})

	checkCompletion(ecs, session, playerObj)
}

// collectCoins removes every coin overlapping the player this tick. The
// entity is gone before the next system runs, so a coin can never pay out
// twice.
func collectCoins(ecs *ecs.ECS, session *components.SessionData, playerObj *resolv.Object) {
	var collected []*donburi.Entry
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		if overlaps(playerObj, components.Object.Get(e).Object) {
			collected = append(collected, e)
		}
	})

	for _, e := range collected {
		removeFromSpace(ecs, components.Object.Get(e).Object)
		ecs.World.Remove(e.Entity())
		session.Score += cfg.Score.Coin
		PlaySFX(ecs, cfg.SoundCoin)
	}
}

// hurtPlayer handles a side-on enemy contact: lose a life, then either end
// the session or respawn at the level start with velocity cleared.
func hurtPlayer(ecs *ecs.ECS, session *components.SessionData, player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object) {
	if player.InvulnFrames > 0 {
		return
	}

	session.Lives--
	PlaySFX(ecs, cfg.SoundHurt)

	if session.Lives <= 0 {
		session.Phase = cfg.PhaseGameOver
		return
	}

	obj.X = player.SpawnX
	obj.Y = player.SpawnY
	obj.Update()
	physics.SpeedX = 0
	physics.SpeedY = 0
	player.InvulnFrames = cfg.Player.HurtGraceFrames
}

// checkCompletion flags the session for a level advance once the player's
// left edge passes the completion margin. The transition itself runs in
// UpdateSession so this tick's encounters finish on the old level.
func checkCompletion(ecs *ecs.ECS, session *components.SessionData, playerObj *resolv.Object) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return
	}

	if playerObj.X > level.Current.PixelWidth()-cfg.Level.CompleteMargin {
		session.PendingAdvance = true
	}
}

// overlaps reports strict AABB overlap. Touching edges do not count, so a
// body resting exactly on top of another is not an encounter.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func removeFromSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}
