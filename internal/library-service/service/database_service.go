package service

import (
	"context"
	"fmt"

	"Library_Demo_Service/internal/library-service/datasource"
	"Library_Demo_Service/internal/library-service/mapper"
	"Library_Demo_Service/internal/library-service/model"
)

const (
	connectionSuccessMessage = "Database connection successful"
	connectionFailedPrefix   = "Database connection failed: "
)

type DatabaseService interface {
	// TestConnection always returns a populated report. The error is only
	// there so callers can log the cause.
	TestConnection(ctx context.Context) (model.ConnectionTest, error)
	TestAnnotationMapping(ctx context.Context) (model.ConnectionResult, error)
	TestXMLMapping(ctx context.Context) (model.ConnectionResult, error)
	GetDatabaseVersion(ctx context.Context) (model.ConnectionResult, error)
	// GetPoolInfo is empty when the source is not backed by a known pool.
	GetPoolInfo() map[string]any
}

type databaseService struct {
	source     datasource.Source
	testMapper mapper.TestMapper
}

func (d *databaseService) TestConnection(ctx context.Context) (model.ConnectionTest, error) {
	conn, err := d.source.Conn(ctx)
	if err != nil {
		return failedConnectionTest(err), fmt.Errorf("DatabaseService.TestConnection: %w", err)
	}
	defer conn.Close()

	meta, err := datasource.ReadMetadata(ctx, conn, d.source)
	if err != nil {
		return failedConnectionTest(err), fmt.Errorf("DatabaseService.TestConnection: %w", err)
	}
	return model.ConnectionTest{
		Success:         true,
		Message:         connectionSuccessMessage,
		DriverName:      meta.DriverName,
		DatabaseName:    meta.DatabaseName,
		DatabaseVersion: meta.DatabaseVersion,
		URL:             meta.URL,
	}, nil
}

func failedConnectionTest(err error) model.ConnectionTest {
	return model.ConnectionTest{
		Success: false,
		Message: connectionFailedPrefix + err.Error(),
	}
}

func (d *databaseService) TestAnnotationMapping(ctx context.Context) (model.ConnectionResult, error) {
	res, err := d.testMapper.TestConnection(ctx)
	if err != nil {
		return res, fmt.Errorf("DatabaseService.TestAnnotationMapping: %w", err)
	}
	return res, nil
}

func (d *databaseService) TestXMLMapping(ctx context.Context) (model.ConnectionResult, error) {
	res, err := d.testMapper.TestXMLMapping(ctx)
	if err != nil {
		return res, fmt.Errorf("DatabaseService.TestXMLMapping: %w", err)
	}
	return res, nil
}

func (d *databaseService) GetDatabaseVersion(ctx context.Context) (model.ConnectionResult, error) {
	res, err := d.testMapper.GetDatabaseVersion(ctx)
	if err != nil {
		return res, fmt.Errorf("DatabaseService.GetDatabaseVersion: %w", err)
	}
	return res, nil
}

func (d *databaseService) GetPoolInfo() map[string]any {
	pooled, ok := d.source.(datasource.PooledSource)
	if !ok {
		return map[string]any{}
	}
	return pooled.PoolInfo().Map()
}

func NewDatabaseService(source datasource.Source, testMapper mapper.TestMapper) DatabaseService {
	return &databaseService{
		source:     source,
		testMapper: testMapper,
	}
}
