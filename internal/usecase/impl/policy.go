package impl

import (
	"patrol/config"
	"patrol/internal/domain/patrol"
)

func metricsPolicyFromConfig(cfg *config.Config) patrol.MetricsPolicy {
	policy := patrol.DefaultMetricsPolicy()
	if cfg != nil && cfg.Patrol != nil && cfg.Patrol.OnTimeSLA > 0 {
		policy.OnTimeSLA = cfg.Patrol.OnTimeSLA
	}

	return policy
}

// alertPolicyFromConfig copies the configured thresholds; zero values fall back to the defaults inside the engine.
func alertPolicyFromConfig(cfg *config.Config) patrol.AlertPolicy {
	if cfg == nil || cfg.Notification == nil {
		return patrol.DefaultAlertPolicy()
	}
	n := cfg.Notification

	return patrol.AlertPolicy{
		LocationFailureWindow:    n.LocationFailureWindow,
		LocationFailureThreshold: n.LocationFailureThreshold,
		StaleAfter:               n.StaleAfter,
		Lookback:                 n.Lookback,
		UnauthorizedLimit:        n.UnauthorizedLimit,
		SuccessLimit:             n.SuccessLimit,
	}
}

func feedLimitFromConfig(cfg *config.Config) int {
	if cfg == nil || cfg.Notification == nil || cfg.Notification.FeedLimit <= 0 {
		return patrol.DefaultFeedLimit
	}

	return cfg.Notification.FeedLimit
}
