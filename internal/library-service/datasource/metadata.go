package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const metadataQuery = "SELECT version(), current_setting('server_version')"

type Metadata struct {
	DriverName      string
	DatabaseName    string
	DatabaseVersion string
	URL             string
}

// ReadMetadata reports the product and version of the server behind conn.
func ReadMetadata(ctx context.Context, conn *sql.Conn, source Source) (Metadata, error) {
	var full, version string
	if err := conn.QueryRowContext(ctx, metadataQuery).Scan(&full, &version); err != nil {
		return Metadata{}, fmt.Errorf("datasource.ReadMetadata: %w", err)
	}
	return Metadata{
		DriverName:      source.DriverName(),
		DatabaseName:    productName(full),
		DatabaseVersion: version,
		URL:             source.URL(),
	}, nil
}

// productName extracts the vendor from version(). openGauss reports itself as
// "PostgreSQL 9.2.4 (openGauss 5.0.0 build ...)".
func productName(version string) string {
	if strings.Contains(version, "openGauss") {
		return "openGauss"
	}
	fields := strings.Fields(version)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "(),")
}
