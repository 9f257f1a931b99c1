package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assessmentScores() []CategoryScore {
	return []CategoryScore{
		{EntityID: "se-1", EntityName: "Green Loop", Category: "Finance", Score: 3},
		{EntityID: "se-1", EntityName: "Green Loop", Category: "Finance", Score: 4},
		{EntityID: "se-1", EntityName: "Green Loop", Category: "Marketing", Score: "2"},
		{EntityID: "se-2", EntityName: "Bright Farms", Category: "Operations", Score: 5},
		{EntityID: "se-2", EntityName: "Bright Farms", Category: "Finance", Score: 1},
		{EntityID: "se-3", Category: "Finance", Score: "n/a"},
	}
}

func TestBuildHeatMap(t *testing.T) {
	heat := BuildHeatMap(assessmentScores())

	require.Len(t, heat, 3)
	assert.Equal(t, "se-2", heat[0].ID)
	assert.Equal(t, "Bright Farms", heat[0].Label)
	assert.Equal(t, "se-1", heat[1].ID)
	assert.Equal(t, "Green Loop", heat[1].Label)
	assert.Equal(t, "se-3", heat[2].ID)
	assert.Equal(t, "se-3", heat[2].Label)

	assert.Equal(t, []SeriesPoint{
		{X: "Finance", Y: 3.5},
		{X: "Marketing", Y: 2},
		{X: "Operations", Y: 0},
	}, heat[1].Data)

	for _, row := range heat {
		require.Len(t, row.Data, 3)
		assert.Equal(t, "Finance", row.Data[0].X)
		assert.Equal(t, "Operations", row.Data[2].X)
	}
	assert.Equal(t, 0.0, heat[2].Data[0].Y)
}

func TestBuildHeatMap_DuplicateNames(t *testing.T) {
	heat := BuildHeatMap([]CategoryScore{
		{EntityID: "e2", EntityName: "Acme", Category: "Finance", Score: 4},
		{EntityID: "e1", EntityName: "Acme", Category: "Finance", Score: 2},
	})

	require.Len(t, heat, 2)
	assert.Equal(t, NamedSeries{ID: "e1", Label: "Acme", Data: []SeriesPoint{{X: "Finance", Y: 2}}}, heat[0])
	assert.Equal(t, NamedSeries{ID: "e2", Label: "Acme", Data: []SeriesPoint{{X: "Finance", Y: 4}}}, heat[1])
}

func TestBuildHeatMap_Empty(t *testing.T) {
	assert.Empty(t, BuildHeatMap(nil))
}

func TestCompareCategories(t *testing.T) {
	cmp := CompareCategories("se-1", "se-2", assessmentScores())

	assert.Equal(t, "se-1", cmp.PrimaryID)
	assert.Equal(t, "se-2", cmp.SecondaryID)
	assert.Equal(t, map[string]CategoryPair{
		"Finance":    {Primary: 3.5, Secondary: 1},
		"Marketing":  {Primary: 2, Secondary: 0},
		"Operations": {Primary: 0, Secondary: 5},
	}, cmp.ValuesByCategory)

	assert.Equal(t, []RadarRow{
		{Category: "Finance", Primary: 3.5, Secondary: 1},
		{Category: "Marketing", Primary: 2, Secondary: 0},
		{Category: "Operations", Primary: 0, Secondary: 5},
	}, cmp.Rows())
}

func TestCompareCategories_IgnoresOtherEntities(t *testing.T) {
	cmp := CompareCategories("se-3", "missing", assessmentScores())

	assert.Equal(t, map[string]CategoryPair{
		"Finance": {Primary: 0, Secondary: 0},
	}, cmp.ValuesByCategory)
}
