package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FavoriteServiceTestSuite struct {
	suite.Suite
	mockFavRepo      *MockFavoriteRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.FavoriteSvcFacade
}

func (suite *FavoriteServiceTestSuite) SetupTest() {
	suite.mockFavRepo = new(MockFavoriteRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	currencySvc := services.NewCurrencyService(suite.mockCurrencyRepo)
	suite.service = services.NewFavoriteService(suite.mockFavRepo, currencySvc, services.WithClock(fixedClock))
}

func (suite *FavoriteServiceTestSuite) expectCurrency(ctx context.Context, code string) {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, code).Return(&domain.Currency{CurrencyCode: code, Name: code}, nil).Once()
}

func (suite *FavoriteServiceTestSuite) TestAddFavorite_Success() {
	ctx := context.Background()
	suite.expectCurrency(ctx, "USD")
	suite.expectCurrency(ctx, "EUR")
	suite.mockFavRepo.On("SaveFavorite", ctx, mock.MatchedBy(func(f domain.FavoriteCurrencyPair) bool {
		return f.UserID == "user-1" && f.FromCurrencyCode == "USD" && f.ToCurrencyCode == "EUR" &&
			f.FavoriteID != "" && f.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	fav, err := suite.service.AddFavorite(ctx, "user-1", "usd", "eur")

	suite.Require().NoError(err)
	suite.Equal("USD", fav.FromCurrencyCode)
	suite.Require().NotNil(fav.FromCurrency)
	suite.Equal("EUR", fav.ToCurrency.CurrencyCode)
	suite.mockFavRepo.AssertExpectations(suite.T())
}

func (suite *FavoriteServiceTestSuite) TestAddFavorite_UnknownCurrencyDoesNotCreate() {
	ctx := context.Background()
	suite.expectCurrency(ctx, "USD")
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XYZ").Return(nil, apperrors.NewNotFoundError("currency XYZ not found")).Once()

	_, err := suite.service.AddFavorite(ctx, "user-1", "USD", "XYZ")

	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "GetOrCreateCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockFavRepo.AssertNotCalled(suite.T(), "SaveFavorite", mock.Anything, mock.Anything)
}

func (suite *FavoriteServiceTestSuite) TestAddFavorite_Duplicate() {
	ctx := context.Background()
	suite.expectCurrency(ctx, "USD")
	suite.expectCurrency(ctx, "EUR")
	suite.mockFavRepo.On("SaveFavorite", ctx, mock.Anything).Return(apperrors.NewConflictError("already a favorite")).Once()

	_, err := suite.service.AddFavorite(ctx, "user-1", "USD", "EUR")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *FavoriteServiceTestSuite) TestRemoveFavorite_OwnedByAnotherUser() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockFavRepo.On("FindFavoriteByID", ctx, id).Return(&domain.FavoriteCurrencyPair{FavoriteID: id, UserID: "user-2"}, nil).Once()

	err := suite.service.RemoveFavorite(ctx, "user-1", id)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockFavRepo.AssertNotCalled(suite.T(), "DeleteFavorite", mock.Anything, mock.Anything)
}

func (suite *FavoriteServiceTestSuite) TestRemoveFavorite_Missing() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockFavRepo.On("FindFavoriteByID", ctx, id).Return(nil, apperrors.NewNotFoundError("favorite not found")).Once()

	err := suite.service.RemoveFavorite(ctx, "user-1", id)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FavoriteServiceTestSuite) TestRemoveFavorite_MalformedID() {
	err := suite.service.RemoveFavorite(context.Background(), "user-1", "not-a-uuid")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFavRepo.AssertNotCalled(suite.T(), "FindFavoriteByID", mock.Anything, mock.Anything)
}

func (suite *FavoriteServiceTestSuite) TestRemoveFavorite_Success() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockFavRepo.On("FindFavoriteByID", ctx, id).Return(&domain.FavoriteCurrencyPair{FavoriteID: id, UserID: "user-1"}, nil).Once()
	suite.mockFavRepo.On("DeleteFavorite", ctx, id).Return(nil).Once()

	suite.NoError(suite.service.RemoveFavorite(ctx, "user-1", id))
	suite.mockFavRepo.AssertExpectations(suite.T())
}

func (suite *FavoriteServiceTestSuite) TestGetFavorite_Forbidden() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockFavRepo.On("FindFavoriteByID", ctx, id).Return(&domain.FavoriteCurrencyPair{FavoriteID: id, UserID: "user-2"}, nil).Once()

	_, err := suite.service.GetFavorite(ctx, "user-1", id)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *FavoriteServiceTestSuite) TestIsFavorite_CaseInsensitive() {
	ctx := context.Background()
	suite.mockFavRepo.On("FavoriteExists", ctx, "user-1", "USD", "EUR").Return(true, nil).Once()

	ok, err := suite.service.IsFavorite(ctx, "user-1", "usd", "Eur")

	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *FavoriteServiceTestSuite) TestListFavorites_ScopedToUser() {
	ctx := context.Background()
	suite.mockFavRepo.On("ListFavoritesByUser", ctx, "user-1").Return(nil, nil).Once()

	favs, err := suite.service.ListFavorites(ctx, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(favs)
	suite.Empty(favs)
}

func TestFavoriteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteServiceTestSuite))
}
