package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisAddr             string
	KafkaHost             string
	KafkaOrderStatusTopic string
	CartStore             string
	TaxRateBasisPoints    int
	DeliveryTickSeconds   int
	HistoryExportPath     string
}
