// Package fruitfall is the simulation and rendering core of a pose-controlled
// catcher arcade game for [Ebitengine].
//
// The engine owns the session state machine (Ready → Playing → GameOver), the
// falling item stream, the player controller, collision and scoring with
// combo/difficulty progression, and a fixed-capacity particle pool for catch
// and hazard bursts. Everything advances in fixed ticks: the host calls
// [Game.Update] then [Game.Draw] once per frame, and feeds stabilized pose
// labels through [Game.SetPose] whenever the pose pipeline produces one.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	game := fruitfall.NewGame(fruitfall.DefaultConfig())
//	game.Start()
//	fruitfall.Run(game, fruitfall.RunConfig{Title: "Fruitfall"})
//
// For full control (your own input handling, HUD, pose feed), implement
// [ebiten.Game] yourself and call [Game.Update] and [Game.Draw] directly:
//
//	type host struct{ game *fruitfall.Game }
//
//	func (h *host) Update() error              { h.game.Update(); return nil }
//	func (h *host) Draw(s *ebiten.Image)       { h.game.Draw(s) }
//	func (h *host) Layout(w, h int) (int, int) { return 480, 640 }
//
// # Pose input
//
// The engine consumes a closed set of stabilized lane labels — "left",
// "center", "right" (case-insensitive) — typically produced by a webcam
// pose classifier. Delivery cadence is independent of the frame rate;
// [Game.SetPose] just stores the target, which the next tick reads.
// Unknown labels and calls outside the Playing phase are silently ignored.
//
// # Listeners
//
// The engine pushes state changes out through two callback fields rather
// than owning any UI: [Game.OnScore] fires after every scoring event and at
// session start, [Game.OnGameOver] fires exactly once when the last life
// goes. The examples directory shows a minimal HUD built on them.
//
// [Ebitengine]: https://ebitengine.org
package fruitfall
