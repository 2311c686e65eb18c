package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_ledger_transactions_total",
		Help: "Committed ledger transactions by kind and operation.",
	}, []string{"kind", "operation"})

	stockRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_stock_rejections_total",
		Help: "Ledger operations rejected by the no-negative-stock guard.",
	}, []string{"kind"})
)
