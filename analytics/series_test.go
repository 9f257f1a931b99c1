package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSamples() []Sample {
	return []Sample{
		{Date: "2024-01-15", Value: 100},
		{Date: "2024-02-20", Value: 200},
		{Date: "2024-04-10", Value: 300},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	buckets := Aggregate(scenarioSamples())

	require.Len(t, buckets, 2)
	assert.Equal(t, 2, buckets["Q1 2024"].Count)
	assert.True(t, decimal.NewFromInt(300).Equal(buckets["Q1 2024"].Sum))
	assert.Equal(t, 150.0, buckets["Q1 2024"].Mean())
	assert.Equal(t, 1, buckets["Q2 2024"].Count)
	assert.Equal(t, 300.0, buckets["Q2 2024"].Mean())
}

func TestAggregate_EverySampleAssignedOnce(t *testing.T) {
	samples := []Sample{
		{Date: "2023-12-31", Value: "10"},
		{Date: "2024-01-01", Value: 20},
		{Date: "2024-03-31", Value: nil},
		{Date: "2024-07-04", Value: "oops"},
		{Date: "", Value: 999},
		{Date: "bad", Value: 999},
		{Date: nil, Value: 999},
		{Date: time.Date(2024, time.October, 9, 0, 0, 0, 0, time.UTC), Value: 5.5},
	}

	buckets := Aggregate(samples)

	assert.Equal(t, 5, buckets.Total())
	assert.Len(t, buckets, 4)
	// nil 值按 0 计入
	assert.Equal(t, 2, buckets["Q1 2024"].Count)
	assert.Equal(t, 10.0, buckets["Q1 2024"].Mean())
	assert.Equal(t, 0.0, buckets["Q3 2024"].Mean())
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	samples := scenarioSamples()
	before := append([]Sample{}, samples...)

	Aggregate(samples)

	assert.Equal(t, before, samples)
}

func TestAggregateDated(t *testing.T) {
	buckets := AggregateDated([]DatedSample{
		{Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), Value: decimal.NewFromInt(100)},
		{Date: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), Value: decimal.NewFromInt(200)},
		{Date: time.Time{}, Value: decimal.NewFromInt(1000)},
	})

	require.Len(t, buckets, 1)
	assert.Equal(t, 150.0, buckets["Q1 2024"].Mean())
}

func TestNormalize(t *testing.T) {
	out, dropped, zeroed := Normalize([]Sample{
		{Date: "2024-01-15", Value: "100"},
		{Date: "nope", Value: 1},
		{Date: "2024-05-01", Value: "n/a"},
	})

	assert.Len(t, out, 2)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 1, zeroed)
	assert.True(t, out[1].Value.IsZero())
}

func TestBucketMean_Empty(t *testing.T) {
	var nilBucket *Bucket
	assert.Equal(t, 0.0, nilBucket.Mean())
	assert.Equal(t, 0.0, (&Bucket{Sum: decimal.NewFromInt(10)}).Mean())
}

func TestMean(t *testing.T) {
	mean, n := Mean([]Sample{
		{Date: "2024-01-01", Value: 1},
		{Date: "2024-02-01", Value: 2},
		{Date: "2024-03-01", Value: "2"},
		{Date: "broken", Value: 100},
	})
	assert.Equal(t, 1.67, mean)
	assert.Equal(t, 3, n)

	mean, n = Mean(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0, n)
}

func TestAssemble_Scenario(t *testing.T) {
	points := Assemble(Aggregate(scenarioSamples()))

	assert.Equal(t, []SeriesPoint{
		{X: "Q1 2024", Y: 150},
		{X: "Q2 2024", Y: 300},
	}, points)
}

func TestAssemble_SortsAcrossYearBoundary(t *testing.T) {
	buckets := Buckets{
		"Q1 2024": {Sum: decimal.NewFromInt(1), Count: 1},
		"Q4 2023": {Sum: decimal.NewFromInt(2), Count: 1},
		"Q2 2022": {Sum: decimal.NewFromInt(3), Count: 1},
		"Q3 2024": {Sum: decimal.NewFromInt(4), Count: 1},
		"Q10 2020": {Sum: decimal.NewFromInt(5), Count: 1},
	}

	points := Assemble(buckets)

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.X
	}
	assert.Equal(t, []string{"Q2 2022", "Q4 2023", "Q1 2024", "Q3 2024", "Q10 2020"}, labels)

	for i := 1; i < len(points)-1; i++ {
		prev, _ := ParseQuarter(points[i-1].X)
		cur, _ := ParseQuarter(points[i].X)
		assert.False(t, cur.Before(prev))
	}
}

func TestAssemble_RoundsMean(t *testing.T) {
	points := Assemble(Buckets{
		"Q1 2024": {Sum: decimal.NewFromInt(5), Count: 2},
		"Q2 2024": {Sum: decimal.NewFromInt(-5), Count: 2},
		"Q3 2024": {Sum: decimal.NewFromInt(10), Count: 3},
	})

	assert.Equal(t, []SeriesPoint{
		{X: "Q1 2024", Y: 3},
		{X: "Q2 2024", Y: -2},
		{X: "Q3 2024", Y: 3},
	}, points)
}

func TestAssemble_Empty(t *testing.T) {
	points := Assemble(Aggregate(nil))
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestAssembleSeries(t *testing.T) {
	series := AssembleSeries("Inflow", scenarioSamples())
	assert.Equal(t, "Inflow", series.ID)
	assert.Len(t, series.Data, 2)
}
