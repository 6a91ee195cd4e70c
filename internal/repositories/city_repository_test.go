package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type CityRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo CityRepository
}

func (s *CityRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewCityRepository(s.db)

	cities := []db_models.City{
		{Name: "Paris", Country: "France", Region: "Europe", CostIndex: 8, Popularity: 95},
		{Name: "Tokyo", Country: "Japan", Region: "Asia", CostIndex: 9, Popularity: 90},
		{Name: "Parma", Country: "Italy", Region: "Europe", CostIndex: 6, Popularity: 40},
		{Name: "Lyon", Country: "France", Region: "Europe", CostIndex: 7, Popularity: 55},
	}
	require.NoError(s.T(), s.db.Create(&cities).Error)
}

func TestCityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CityRepositoryTestSuite))
}

func (s *CityRepositoryTestSuite) TestSearchTermMatchesNameOrCountryCaseInsensitive() {
	cities, err := s.repo.Search(context.Background(), "PAR", "")
	require.NoError(s.T(), err)

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	// "par" hits Paris and Parma by name; Tokyo matches nothing.
	assert.ElementsMatch(s.T(), []string{"Paris", "Parma"}, names)
}

func (s *CityRepositoryTestSuite) TestSearchTermMatchesCountrySubstring() {
	cities, err := s.repo.Search(context.Background(), "fran", "")
	require.NoError(s.T(), err)
	require.Len(s.T(), cities, 2)
	// Popularity descending: Paris (95) before Lyon (55).
	assert.Equal(s.T(), "Paris", cities[0].Name)
	assert.Equal(s.T(), "Lyon", cities[1].Name)
}

func (s *CityRepositoryTestSuite) TestSearchCombinesTermAndCountry() {
	cities, err := s.repo.Search(context.Background(), "par", "Italy")
	require.NoError(s.T(), err)
	require.Len(s.T(), cities, 1)
	assert.Equal(s.T(), "Parma", cities[0].Name)
}

func (s *CityRepositoryTestSuite) TestSearchWithoutFiltersOrdersByPopularity() {
	cities, err := s.repo.Search(context.Background(), "", "")
	require.NoError(s.T(), err)
	require.Len(s.T(), cities, 4)
	assert.Equal(s.T(), "Paris", cities[0].Name)
	assert.Equal(s.T(), "Tokyo", cities[1].Name)
}

func (s *CityRepositoryTestSuite) TestSearchIsCappedAtFiftyRows() {
	extra := make([]db_models.City, 0, 60)
	for i := 0; i < 60; i++ {
		extra = append(extra, db_models.City{
			Name:       fmt.Sprintf("City %02d", i),
			Country:    "Atlantis",
			Popularity: i,
		})
	}
	require.NoError(s.T(), s.db.Create(&extra).Error)

	cities, err := s.repo.Search(context.Background(), "", "")
	require.NoError(s.T(), err)
	assert.Len(s.T(), cities, 50)
}
