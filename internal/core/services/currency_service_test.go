package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, services.WithClock(fixedClock))
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_UpperCasesInput() {
	ctx := context.Background()
	usd := &domain.Currency{CurrencyCode: "USD", Name: "US Dollar"}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()

	curr, err := suite.service.GetCurrencyByCode(ctx, " usd ")

	suite.Require().NoError(err)
	suite.Equal(usd, curr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_InvalidCode() {
	_, err := suite.service.GetCurrencyByCode(context.Background(), "US1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XYZ").Return(nil, apperrors.NewNotFoundError("currency XYZ not found")).Once()

	_, err := suite.service.GetCurrencyByCode(ctx, "xyz")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestMustExist_UnknownCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "ABC").Return(nil, apperrors.NewNotFoundError("currency ABC not found")).Once()

	_, err := suite.service.MustExist(ctx, "abc")

	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetOrCreateCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestSearchCurrencies_EmptyResult() {
	ctx := context.Background()
	suite.mockRepo.On("SearchCurrencies", ctx, "zz").Return(nil, nil).Once()

	res, err := suite.service.SearchCurrencies(ctx, "zz")

	suite.Require().NoError(err)
	suite.NotNil(res)
	suite.Empty(res)
}

func (suite *CurrencyServiceTestSuite) TestGetOrCreateCurrency_FallsBackToCode() {
	ctx := context.Background()
	want := domain.CurrencyDefaults{Name: "CHF", Symbol: "CHF"}
	created := &domain.Currency{CurrencyCode: "CHF", Name: "CHF", Symbol: "CHF"}
	suite.mockRepo.On("GetOrCreateCurrency", ctx, "CHF", want, fixedNow).Return(created, true, nil).Once()

	curr, wasCreated, err := suite.service.GetOrCreateCurrency(ctx, "chf", domain.CurrencyDefaults{})

	suite.Require().NoError(err)
	suite.True(wasCreated)
	suite.Equal("CHF", curr.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "gbp", Name: "British Pound", Symbol: "£", FlagEmoji: "🇬🇧"}
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "GBP" && c.Name == "British Pound" && c.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	curr, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("GBP", curr.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCurrency", ctx, mock.Anything).Return(apperrors.NewConflictError("currency USD already exists")).Once()

	_, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{CurrencyCode: "USD", Name: "US Dollar"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_KeepsOmittedFields() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "EUR", Name: "EUR", Symbol: "€", FlagEmoji: "🇪🇺"}
	name := "Euro"
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Name == "Euro" && c.Symbol == "€" && c.FlagEmoji == "🇪🇺" && c.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	curr, err := suite.service.UpdateCurrency(ctx, "eur", dto.UpdateCurrencyRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("Euro", curr.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteCurrency", ctx, "JPY").Return(nil).Once()

	suite.NoError(suite.service.DeleteCurrency(ctx, "jpy"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
