package analysis

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// spikeSigma is how many standard deviations above the mean a day must be to count as a spike.
const spikeSigma = 2.0

// DailySpendStats computes the mean and population standard deviation of a daily
// spend series and picks out the days above mean + 2σ.
func DailySpendStats(daily []domain.DailySpend) domain.SpendStats {
	stats := domain.SpendStats{
		MeanDaily:   decimal.Zero,
		StdDevDaily: decimal.Zero,
		SpikeDays:   []domain.DailySpend{},
	}
	if len(daily) == 0 {
		return stats
	}

	values := make([]float64, len(daily))
	for i, d := range daily {
		values[i] = d.Amount.InexactFloat64()
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	stats.MeanDaily = decimal.NewFromFloat(mean).Round(2)
	stats.StdDevDaily = decimal.NewFromFloat(std).Round(2)

	if std == 0 {
		return stats
	}
	threshold := mean + spikeSigma*std
	for i, v := range values {
		if v > threshold {
			stats.SpikeDays = append(stats.SpikeDays, daily[i])
		}
	}
	return stats
}
