package cmd

import "time"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	TaxRate           float64
	ShippingFee       float64
	FreeShippingMin   float64
	ReminderOlderThan time.Duration
}
