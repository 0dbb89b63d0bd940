package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

func district(code int64, score float64) models.District {
	return models.District{
		Code:            code,
		Name:            fmt.Sprintf("district-%d", code),
		RegionCode:      11680,
		CommercialScore: score,
	}
}

func TestMapToView(t *testing.T) {
	d := models.District{
		Code:                    3110001,
		Name:                    "강남역",
		Coordinates:             models.GeoPoint{Lat: 37.49, Lon: 127.02},
		RegionCode:              11680,
		RegionName:              "강남구",
		SubRegionCode:           11680640,
		SubRegionName:           "역삼1동",
		AreaSize:                152000,
		CommercialScore:         91.5,
		SalesScore:              88,
		ResidentPopulationScore: 40,
		FloatingPopulationScore: 99,
		DiversityScore:          77,
	}

	views := MapToView([]models.District{d})

	assert.Equal(t, []models.DistrictView{{
		Code:                    3110001,
		Name:                    "강남역",
		Latitude:                37.49,
		Longitude:               127.02,
		RegionCode:              11680,
		RegionName:              "강남구",
		SubRegionCode:           11680640,
		SubRegionName:           "역삼1동",
		AreaSize:                152000,
		CommercialScore:         91.5,
		SalesScore:              88,
		ResidentPopulationScore: 40,
		FloatingPopulationScore: 99,
		DiversityScore:          77,
	}}, views)
	assert.Empty(t, MapToView(nil))
}

func TestTopByScore(t *testing.T) {
	t.Run("higher score first", func(t *testing.T) {
		top := TopByScore([]models.District{district(1, 80), district(2, 95)}, TopLimit)

		assert.Len(t, top, 2)
		assert.Equal(t, int64(2), top[0].Code)
		assert.Equal(t, int64(1), top[1].Code)
	})

	t.Run("length is min of limit and input", func(t *testing.T) {
		var districts []models.District
		for i := 0; i < 25; i++ {
			districts = append(districts, district(int64(i), float64((i*37)%50)))
		}

		for _, limit := range []int{0, 1, 10, 25, 40} {
			top := TopByScore(districts, limit)
			assert.Len(t, top, min(limit, len(districts)))
			for i := 1; i < len(top); i++ {
				assert.GreaterOrEqual(t, top[i-1].CommercialScore, top[i].CommercialScore)
			}
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		top := TopByScore([]models.District{district(5, 50), district(3, 50), district(9, 60), district(1, 50)}, TopLimit)

		var codes []int64
		for _, v := range top {
			codes = append(codes, v.Code)
		}
		assert.Equal(t, []int64{9, 5, 3, 1}, codes)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		in := []models.District{district(1, 10), district(2, 20)}
		TopByScore(in, TopLimit)
		assert.Equal(t, int64(1), in[0].Code)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, TopByScore(nil, TopLimit))
	})
}
