package http

import "github.com/prometheus/client_golang/prometheus"

type LoginMetrics struct {
	attempts *prometheus.CounterVec
}

func NewLoginMetrics(reg prometheus.Registerer) *LoginMetrics {
	m := &LoginMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login submissions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.attempts)
	return m
}

func (m *LoginMetrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(outcome).Inc()
}
