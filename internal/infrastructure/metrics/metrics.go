package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LoyaltyMetrics содержит все метрики бонусного движка
type LoyaltyMetrics struct {
	// Начисления
	AccrualsTotal       prometheus.CounterVec
	AccruedPointsTotal  prometheus.CounterVec
	AccrualErrorsTotal  prometheus.CounterVec

	// Обмен призов
	RedemptionsTotal    prometheus.CounterVec
	RedeemedPointsTotal prometheus.CounterVec
	RedemptionDuration  prometheus.HistogramVec

	// Запросы и выдача бонусов
	BonusRequestsTotal  prometheus.CounterVec
	BonusIssuesTotal    prometheus.CounterVec
}

func NewLoyaltyMetrics() *LoyaltyMetrics {
	return &LoyaltyMetrics{
		AccrualsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_accruals_total",
				Help: "Общее количество начислений по завершенным заказам",
			},
			[]string{"program_id", "level"},
		),

		AccruedPointsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_accrued_points_total",
				Help: "Общая сумма начисленных бонусных баллов",
			},
			[]string{"program_id"},
		),

		AccrualErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_accrual_errors_total",
				Help: "Количество пропущенных начислений по причинам",
			},
			[]string{"reason"},
		),

		RedemptionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_redemptions_total",
				Help: "Количество попыток обмена баллов на призы",
			},
			[]string{"program_id", "result"},
		),

		RedeemedPointsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_redeemed_points_total",
				Help: "Общая сумма списанных баллов за призы",
			},
			[]string{"program_id"},
		),

		RedemptionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loyalty_redemption_duration_seconds",
				Help:    "Время выполнения обмена приза в секундах",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"result"},
		),

		BonusRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_bonus_requests_total",
				Help: "Количество запросов бонуса по программам",
			},
			[]string{"program_id", "result"},
		),

		BonusIssuesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_bonus_issues_total",
				Help: "Количество выданных администратором бонус-кодов",
			},
			[]string{"program_id"},
		),
	}
}

// RecordAccrual записывает успешное начисление
func (m *LoyaltyMetrics) RecordAccrual(programID, levelName string, points float64) {
	m.AccrualsTotal.WithLabelValues(programID, levelName).Inc()
	m.AccruedPointsTotal.WithLabelValues(programID).Add(points)
}

// RecordAccrualError записывает пропущенное начисление
func (m *LoyaltyMetrics) RecordAccrualError(reason string) {
	m.AccrualErrorsTotal.WithLabelValues(reason).Inc()
}

// RecordRedemption записывает попытку обмена приза
func (m *LoyaltyMetrics) RecordRedemption(programID, result string, points, durationSeconds float64) {
	m.RedemptionsTotal.WithLabelValues(programID, result).Inc()
	m.RedemptionDuration.WithLabelValues(result).Observe(durationSeconds)
	if result == "success" {
		m.RedeemedPointsTotal.WithLabelValues(programID).Add(points)
	}
}

// RecordBonusRequest записывает запрос бонуса
func (m *LoyaltyMetrics) RecordBonusRequest(programID, result string) {
	m.BonusRequestsTotal.WithLabelValues(programID, result).Inc()
}

// RecordBonusIssue записывает выдачу бонус-кода
func (m *LoyaltyMetrics) RecordBonusIssue(programID string) {
	m.BonusIssuesTotal.WithLabelValues(programID).Inc()
}
