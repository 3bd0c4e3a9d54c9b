// Package systems holds the per-tick game rules: fish movement, collision
// tests, spawning, input resolution, eating/growth, culling and the headless
// autopilot. Everything here is a plain function over components so the game
// loop stays the only owner of state.
package systems
