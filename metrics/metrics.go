package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Requests = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pickem_requests_total", Help: "Total HTTP requests handled"},
	)
	PicksRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pickem_picks_recorded_total", Help: "Total pick and tiebreaker writes"},
	)
	Imports = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pickem_imports_total", Help: "Total participant pick sets imported"},
	)
	AdminSaves = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pickem_admin_saves_total", Help: "Total administrative schedule/results replacements"},
	)
	LeaderboardComputed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pickem_leaderboard_computed_total", Help: "Total leaderboard recomputations"},
	)
)

func Register() {
	prometheus.MustRegister(Requests, PicksRecorded, Imports, AdminSaves, LeaderboardComputed)
}
