package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RafflesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "raffle",
		Name:      "raffles_created_total",
		Help:      "Number of raffles created.",
	})

	TicketsSold = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "raffle",
		Name:      "tickets_sold_total",
		Help:      "Number of tickets appended to entrant ledgers.",
	})

	DrawsRequested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "raffle",
		Name:      "draws_requested_total",
		Help:      "Number of randomness rounds requested.",
	})

	PrizesClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "raffle",
		Name:      "prizes_claimed_total",
		Help:      "Number of prizes claimed, including zero-entrant claim-backs.",
	})
)
