package mapper

import (
	"context"
	"fmt"

	apperrors "Library_Demo_Service/internal/library-service/errors"
	"Library_Demo_Service/internal/library-service/model"

	"gorm.io/gorm"
)

const (
	TestConnectionSQL     = "SELECT 'Database Connected Successfully' AS result, CAST(extract(epoch from now()) * 1000 AS BIGINT) AS current_time"
	GetDatabaseVersionSQL = "SELECT version() AS result, CAST(extract(epoch from now()) * 1000 AS BIGINT) AS current_time"

	TestXMLMappingID = "testXmlMapping"
)

type TestMapper interface {
	TestConnection(ctx context.Context) (model.ConnectionResult, error)
	GetDatabaseVersion(ctx context.Context) (model.ConnectionResult, error)
	// TestXMLMapping runs the statement defined in the mapper XML instead of an inline one.
	TestXMLMapping(ctx context.Context) (model.ConnectionResult, error)
}

type testMapper struct {
	db         *gorm.DB
	statements *Statements
}

func (m *testMapper) TestConnection(ctx context.Context) (model.ConnectionResult, error) {
	res, err := m.selectOne(ctx, TestConnectionSQL)
	if err != nil {
		return res, fmt.Errorf("TestMapper.TestConnection: %w", err)
	}
	return res, nil
}

func (m *testMapper) GetDatabaseVersion(ctx context.Context) (model.ConnectionResult, error) {
	res, err := m.selectOne(ctx, GetDatabaseVersionSQL)
	if err != nil {
		return res, fmt.Errorf("TestMapper.GetDatabaseVersion: %w", err)
	}
	return res, nil
}

func (m *testMapper) TestXMLMapping(ctx context.Context) (model.ConnectionResult, error) {
	sql, err := m.statements.Get(TestXMLMappingID)
	if err != nil {
		return model.ConnectionResult{}, fmt.Errorf("TestMapper.TestXMLMapping: %w", err)
	}
	res, err := m.selectOne(ctx, sql)
	if err != nil {
		return res, fmt.Errorf("TestMapper.TestXMLMapping: %w", err)
	}
	return res, nil
}

func (m *testMapper) selectOne(ctx context.Context, sql string) (model.ConnectionResult, error) {
	var res model.ConnectionResult
	result := m.db.WithContext(ctx).Raw(sql).Scan(&res)
	if result.Error != nil {
		return model.ConnectionResult{}, result.Error
	}
	if result.RowsAffected == 0 {
		return model.ConnectionResult{}, apperrors.ErrNoResult
	}
	return res, nil
}

func NewTestMapper(db *gorm.DB, statements *Statements) TestMapper {
	return &testMapper{
		db:         db,
		statements: statements,
	}
}
