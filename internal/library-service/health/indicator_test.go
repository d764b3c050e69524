package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"Library_Demo_Service/internal/library-service/datasource"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSourceIndicator_Health(t *testing.T) {
	testCases := []struct {
		name            string
		setup           func(t *testing.T) datasource.Source
		expectedStatus  string
		expectedDetail  string
		expectedErrText string
	}{
		{
			name: "UP connection valid",
			setup: func(t *testing.T) datasource.Source {
				db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
				require.NoError(t, err)
				t.Cleanup(func() {
					assert.NoError(t, mock.ExpectationsWereMet())
					db.Close()
				})
				mock.ExpectPing()
				return datasource.NewSQLSource(db, "pgx", "", 0)
			},
			expectedStatus: StatusUp,
			expectedDetail: DetailConnected,
		},
		{
			name: "DOWN validation fails",
			setup: func(t *testing.T) datasource.Source {
				db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
				require.NoError(t, err)
				t.Cleanup(func() {
					assert.NoError(t, mock.ExpectationsWereMet())
					db.Close()
				})
				mock.ExpectPing().WillReturnError(errors.New("server closed the connection unexpectedly"))
				return datasource.NewSQLSource(db, "pgx", "", 0)
			},
			expectedStatus: StatusDown,
			expectedDetail: DetailConnectionInvalid,
		},
		{
			name: "DOWN acquisition fails",
			setup: func(t *testing.T) datasource.Source {
				db, _, err := sqlmock.New()
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return datasource.NewSQLSource(db, "pgx", "", 0)
			},
			expectedStatus:  StatusDown,
			expectedDetail:  DetailConnectionFailed,
			expectedErrText: "sql: database is closed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			indicator := NewDataSourceIndicator(tc.setup(t), "OpenGauss", 500*time.Millisecond)

			got := indicator.Health(context.Background())

			assert.Equal(t, tc.expectedStatus, got.Status)
			assert.Equal(t, tc.expectedStatus == StatusUp, got.IsUp())
			assert.Equal(t, "OpenGauss", got.Details["database"])
			assert.Equal(t, tc.expectedDetail, got.Details["status"])
			if tc.expectedErrText != "" {
				assert.Equal(t, tc.expectedErrText, got.Details["error"])
			} else {
				assert.NotContains(t, got.Details, "error")
			}
		})
	}
}

func TestNewDataSourceIndicator_DefaultTimeout(t *testing.T) {
	indicator := NewDataSourceIndicator(nil, "OpenGauss", 0).(*dataSourceIndicator)
	assert.Equal(t, defaultValidationTimeout, indicator.validationTimeout)
}
