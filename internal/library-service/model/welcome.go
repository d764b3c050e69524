package model

type Welcome struct {
	ApplicationName string `json:"applicationName"`
	Message         string `json:"message"`
	Timestamp       int64  `json:"timestamp"`
}

type IndexPage struct {
	AppName string
	Message string
}
