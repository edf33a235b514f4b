package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// sessionDebugReport dumps the session and every live entity as plain
// text, for pasting into a bug report.
func sessionDebugReport(s *Sim) string {
	snap := s.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "--- ArenaStrike debug report ---\n")
	fmt.Fprintf(&b, "tick=%d phase=%s wave=%d/%d score=%d kills=%d\n",
		s.Tick(), s.Phase(), snap.Wave, maxWaves, snap.Score, snap.EnemiesKilled)
	fmt.Fprintf(&b, "player pos=(%.1f,%.1f) hp=%.0f/%.0f dmg=%.0f cooldown=%.2f\n",
		s.Player.Pos.X, s.Player.Pos.Y, s.Player.Health, s.Player.MaxHealth,
		s.Player.Damage, s.Player.Cooldown)

	fmt.Fprintf(&b, "enemies=%d\n", len(s.Enemies))
	for i, e := range s.Enemies {
		alert := "-"
		if e.Alerted() {
			alert = fmt.Sprintf("%.1fs", e.AlertCountdown())
		}
		fmt.Fprintf(&b, "  [%d] %s %s pos=(%.1f,%.1f) hp=%.0f/%.0f alert=%s\n",
			i, e.Class, e.State, e.Pos.X, e.Pos.Y, e.Health, e.MaxHealth, alert)
	}

	fmt.Fprintf(&b, "projectiles=%d particles=%d flashes=%d bystanders=%d\n",
		len(s.Projectiles), len(s.Effects.Particles()),
		len(s.Effects.Flashes()), len(s.Effects.Bystanders()))
	return b.String()
}

// copyDebugReport puts the report on the system clipboard.
func copyDebugReport(s *Sim) error {
	return clipboard.WriteAll(sessionDebugReport(s))
}
