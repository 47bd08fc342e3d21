package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glide/sim"
)

var (
	skyColor     = rl.NewColor(135, 206, 235, 255)
	groundColor  = rl.NewColor(101, 67, 33, 255)
	ceilingColor = rl.NewColor(70, 70, 80, 255)
	flyerColor   = rl.Gold
	slowBalloon  = rl.NewColor(60, 160, 70, 255)
	fastBalloon  = rl.NewColor(200, 50, 50, 255)
)

// Draw renders the current world snapshot plus the HUD.
func (g *Game) Draw() {
	snap := g.sim.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	g.drawBoundary(snap.ScrollX)
	for _, o := range snap.Obstacles {
		drawObstacle(o)
	}
	for _, f := range snap.Flyers {
		drawFlyer(f)
	}
	g.drawHUD(snap)

	rl.EndDrawing()
}

// drawBoundary draws the floor and ceiling strips. Two copies of each
// are drawn at the scroll offset so the wrap is seamless.
func (g *Game) drawBoundary(scroll float64) {
	b := g.sim.Boundary()
	w := float32(g.cfg.Screen.Width)

	for _, dx := range []float32{float32(scroll), float32(scroll) + w} {
		rl.DrawRectangleRec(rl.NewRectangle(
			dx, float32(b.Ground.Y), w, float32(b.Ground.H),
		), groundColor)
		rl.DrawRectangleRec(rl.NewRectangle(
			dx, float32(b.Ceiling.Y), w, float32(b.Ceiling.H),
		), ceilingColor)

		// Tick marks make the scroll visible even on plain strips.
		for x := dx; x < dx+w; x += 50 {
			rl.DrawLineEx(
				rl.NewVector2(x, float32(b.Ground.Y)),
				rl.NewVector2(x+10, float32(b.Ground.Bottom())),
				2, rl.NewColor(80, 50, 20, 255),
			)
			rl.DrawLineEx(
				rl.NewVector2(x, float32(b.Ceiling.Bottom())),
				rl.NewVector2(x+10, float32(b.Ceiling.Y)),
				2, rl.NewColor(50, 50, 60, 255),
			)
		}
	}
}

func drawObstacle(o sim.ObstacleState) {
	cx := float32(o.Box.CenterX())
	cy := float32(o.Box.CenterY())
	col := slowBalloon
	if o.Fast {
		col = fastBalloon
	}

	rl.DrawEllipse(int32(cx), int32(cy), float32(o.Box.W)/2, float32(o.Box.H)/2, col)
	rl.DrawEllipseLines(int32(cx), int32(cy), float32(o.Box.W)/2, float32(o.Box.H)/2, rl.DarkGray)

	// Balloon string trailing below.
	rl.DrawLineEx(
		rl.NewVector2(cx, float32(o.Box.Bottom())),
		rl.NewVector2(cx-8, float32(o.Box.Bottom())+25),
		1.5, rl.DarkGray,
	)
}

func drawFlyer(f sim.FlyerState) {
	box := rl.NewRectangle(
		float32(f.Box.X), float32(f.Box.Y),
		float32(f.Box.W), float32(f.Box.H),
	)
	rl.DrawRectangleRounded(box, 0.5, 8, flyerColor)

	// Eye, so there is a visible heading.
	rl.DrawCircle(
		int32(f.Box.Right()-6), int32(f.Box.Y+8),
		3, rl.Black,
	)

	// Wing flips with vertical velocity.
	wingY := float32(f.Box.CenterY())
	tip := wingY + 10
	if f.Velocity < 0 {
		tip = wingY - 10
	}
	rl.DrawTriangle(
		rl.NewVector2(float32(f.Box.X)+4, wingY),
		rl.NewVector2(float32(f.Box.CenterX()), wingY),
		rl.NewVector2(float32(f.Box.X)+8, tip),
		rl.Orange,
	)
}

func (g *Game) drawHUD(snap sim.Snapshot) {
	score := 0
	if g.flyer != nil {
		score = g.flyer.Score
	}
	rl.DrawText(fmt.Sprintf("SCORE %d", score), 10, 35, 30, rl.White)
	rl.DrawText(fmt.Sprintf("best %d  session %d", g.bestScore, g.session), 10, 70, 20, rl.RayWhite)

	if g.gameOver {
		w := int32(g.cfg.Screen.Width)
		h := int32(g.cfg.Screen.Height)
		rl.DrawRectangle(0, h/2-50, w, 100, rl.NewColor(0, 0, 0, 180))
		msg := "restarting..."
		if g.human != nil {
			msg = "press SPACE to fly again"
		}
		rl.DrawText("GAME OVER", w/2-rl.MeasureText("GAME OVER", 40)/2, h/2-40, 40, rl.Red)
		rl.DrawText(msg, w/2-rl.MeasureText(msg, 20)/2, h/2+10, 20, rl.RayWhite)
	}
}
