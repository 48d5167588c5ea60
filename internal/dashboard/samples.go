package dashboard

import (
	"time"

	"github.com/yusufkecer/health-tracker/internal/domain"
)

func SampleMetrics() []Card {
	return []Card{
		{Title: "Heart Rate", Value: "72", Unit: "bpm", Trend: domain.TrendStable, Change: "0%", Icon: "heart", Color: ColorRed},
		{Title: "Blood Pressure", Value: "120/80", Unit: "mmHg", Trend: domain.TrendDown, Change: "-2%", Icon: "activity", Color: ColorGreen},
		{Title: "Weight", Value: "70.5", Unit: "kg", Trend: domain.TrendDown, Change: "-0.5kg", Icon: "weight", Color: ColorBlue},
		{Title: "Body Temperature", Value: "36.8", Unit: "°C", Trend: domain.TrendStable, Change: "0%", Icon: "thermometer", Color: ColorYellow},
	}
}

type SeriesPoint struct {
	Date      time.Time
	Weight    float64
	HeartRate float64
}

func SampleSeries() []SeriesPoint {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []SeriesPoint{
		{Date: day(1), Weight: 71.2, HeartRate: 75},
		{Date: day(8), Weight: 71.0, HeartRate: 73},
		{Date: day(15), Weight: 70.8, HeartRate: 72},
		{Date: day(22), Weight: 70.6, HeartRate: 71},
		{Date: day(29), Weight: 70.5, HeartRate: 72},
	}
}

// SampleInsights returns the three fixed advisory entries, in display order.
func SampleInsights(userID string, at time.Time) []domain.AIInsight {
	return []domain.AIInsight{
		{
			ID:          "insight_1",
			UserID:      userID,
			Type:        domain.InsightRecommendation,
			Title:       "Improve Sleep Quality",
			Description: "Based on your recent heart rate variability data, consider establishing a consistent bedtime routine to improve recovery.",
			Confidence:  0.85,
			Priority:    domain.PriorityMedium,
			CreatedAt:   at,
		},
		{
			ID:          "insight_2",
			UserID:      userID,
			Type:        domain.InsightTrend,
			Title:       "Weight Loss Progress",
			Description: "You've maintained a steady weight loss trend over the past month. Keep up the great work!",
			Confidence:  0.92,
			Priority:    domain.PriorityLow,
			CreatedAt:   at,
		},
		{
			ID:          "insight_3",
			UserID:      userID,
			Type:        domain.InsightWarning,
			Title:       "Blood Pressure Monitoring",
			Description: "Your blood pressure readings show some variation. Consider monitoring more frequently and consulting your healthcare provider.",
			Confidence:  0.78,
			Priority:    domain.PriorityHigh,
			CreatedAt:   at,
		},
	}
}
