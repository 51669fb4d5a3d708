package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"restomart/internal/common"
	"restomart/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MenuItemRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    MenuItemRepository
	context context.Context
}

func (suite *MenuItemRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewMenuItemRepo(mock)
	suite.context = context.Background()
}

func (suite *MenuItemRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestMenuItemRepoTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemRepoTestSuite))
}

func (suite *MenuItemRepoTestSuite) TestCreate_Success() {
	item := &models.MenuItem{Name: "Ramen", Price: 800}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(insertMenuItemQuery)).
		WithArgs("Ramen", int64(800)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	suite.mock.ExpectCommit()

	err := suite.repo.Create(suite.context, item)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), item.ID)
}

func (suite *MenuItemRepoTestSuite) TestCreate_CheckViolation() {
	item := &models.MenuItem{Name: "Ramen", Price: -1}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(insertMenuItemQuery)).
		WithArgs("Ramen", int64(-1)).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "menu_items_price_non_negative", Message: "violates check constraint"})
	suite.mock.ExpectRollback()

	err := suite.repo.Create(suite.context, item)
	var ve *common.ValidationError
	if assert.ErrorAs(suite.T(), err, &ve) {
		assert.Equal(suite.T(), "price", ve.Field)
	}
	assert.Zero(suite.T(), item.ID)
}

func (suite *MenuItemRepoTestSuite) TestCreate_DatabaseError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(insertMenuItemQuery)).
		WithArgs("Gyoza", int64(400)).
		WillReturnError(errors.New("database connection failed"))
	suite.mock.ExpectRollback()

	err := suite.repo.Create(suite.context, &models.MenuItem{Name: "Gyoza", Price: 400})
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}

func (suite *MenuItemRepoTestSuite) TestCreate_CommitUnavailable() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(insertMenuItemQuery)).
		WithArgs("Gyoza", int64(400)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
	suite.mock.ExpectCommit().WillReturnError(context.DeadlineExceeded)

	err := suite.repo.Create(suite.context, &models.MenuItem{Name: "Gyoza", Price: 400})
	assert.True(suite.T(), common.IsStorageUnavailable(err))
}

func (suite *MenuItemRepoTestSuite) TestList_OrderedByID() {
	rows := pgxmock.NewRows([]string{"id", "name", "price"}).
		AddRow(int64(1), "Ramen", int64(800)).
		AddRow(int64(2), "Gyoza", int64(400))
	suite.mock.ExpectQuery(regexp.QuoteMeta(listMenuItemsQuery)).WillReturnRows(rows)

	items, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []*models.MenuItem{
		{ID: 1, Name: "Ramen", Price: 800},
		{ID: 2, Name: "Gyoza", Price: 400},
	}, items)
}

func (suite *MenuItemRepoTestSuite) TestList_Empty() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(listMenuItemsQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price"}))

	items, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), items)
	assert.Empty(suite.T(), items)
}

func (suite *MenuItemRepoTestSuite) TestList_Repeatable() {
	for i := 0; i < 2; i++ {
		suite.mock.ExpectQuery(regexp.QuoteMeta(listMenuItemsQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price"}).AddRow(int64(1), "Ramen", int64(800)))
	}

	first, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	second, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), first, second)
}

func (suite *MenuItemRepoTestSuite) TestList_QueryError() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(listMenuItemsQuery)).
		WillReturnError(context.DeadlineExceeded)

	items, err := suite.repo.List(suite.context)
	assert.Nil(suite.T(), items)
	assert.True(suite.T(), common.IsStorageUnavailable(err))
}
