package model

type ConnectionTest struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	DriverName      string `json:"driverName,omitempty"`
	DatabaseName    string `json:"databaseName,omitempty"`
	DatabaseVersion string `json:"databaseVersion,omitempty"`
	URL             string `json:"url,omitempty"`
}
