package alertrecorder

import (
	"os"
)

type Config struct {
	Disabled bool

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string

	BigQueryProjectID  string
	BigQueryDataset    string
	BigQueryAlertTable string
	BigQueryPollTable  string
}

func LoadConfig() *Config {
	return &Config{
		Disabled: os.Getenv("ALERT_RESULTS_DISABLED") == "true",

		InfluxDBURL:    getEnvOrDefault("INFLUXDB_URL", "http://localhost:8086"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: getEnvOrDefault("INFLUXDB_BUCKET", "reminder_alerts"),

		BigQueryProjectID:  getEnvOrDefault("BIGQUERY_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT")),
		BigQueryDataset:    getEnvOrDefault("BIGQUERY_DATASET", "reminder_alerts"),
		BigQueryAlertTable: getEnvOrDefault("BIGQUERY_ALERT_TABLE", "alert_dispatches"),
		BigQueryPollTable:  getEnvOrDefault("BIGQUERY_POLL_TABLE", "poll_results"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
