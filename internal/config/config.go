package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
)

type Config struct {
	Port                string        `mapstructure:"PORT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	OperatorWorkers     int           `mapstructure:"OPERATOR_WORKERS"`
	ProgressionSchedule string        `mapstructure:"PROGRESSION_SCHEDULE"`
	TransitDelay        time.Duration `mapstructure:"TRANSIT_DELAY"`
	ConvertDelay        time.Duration `mapstructure:"CONVERT_DELAY"`
	ArrivalDelay        time.Duration `mapstructure:"ARRIVAL_DELAY"`
	UserName            string        `mapstructure:"USER_NAME"`
	ReceiptEmail        bool          `mapstructure:"RECEIPT_EMAIL"`
	ReceiptSMS          bool          `mapstructure:"RECEIPT_SMS"`
	PushTransactions    bool          `mapstructure:"PUSH_TRANSACTIONS"`
	PushSecurity        bool          `mapstructure:"PUSH_SECURITY"`
	AMQPURL             string        `mapstructure:"AMQP_URL"`
	AMQPExchange        string        `mapstructure:"AMQP_EXCHANGE"`
}

var keys = []string{
	"PORT",
	"LOG_LEVEL",
	"OPERATOR_WORKERS",
	"PROGRESSION_SCHEDULE",
	"TRANSIT_DELAY",
	"CONVERT_DELAY",
	"ARRIVAL_DELAY",
	"USER_NAME",
	"RECEIPT_EMAIL",
	"RECEIPT_SMS",
	"PUSH_TRANSACTIONS",
	"PUSH_SECURITY",
	"AMQP_URL",
	"AMQP_EXCHANGE",
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults run a local session with receipts going to the log.
	viper.SetDefault("PORT", "9446")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("OPERATOR_WORKERS", 4)
	viper.SetDefault("PROGRESSION_SCHEDULE", "@every 1s")
	viper.SetDefault("TRANSIT_DELAY", lifecycle.DefaultDelays.Transit.String())
	viper.SetDefault("CONVERT_DELAY", lifecycle.DefaultDelays.Convert.String())
	viper.SetDefault("ARRIVAL_DELAY", lifecycle.DefaultDelays.Arrival.String())
	viper.SetDefault("USER_NAME", "Valued Customer")
	viper.SetDefault("RECEIPT_EMAIL", true)
	viper.SetDefault("RECEIPT_SMS", true)
	viper.SetDefault("PUSH_TRANSACTIONS", true)
	viper.SetDefault("PUSH_SECURITY", true)
	viper.SetDefault("AMQP_EXCHANGE", "transfers")
	viper.AutomaticEnv()

	for _, key := range keys {
		_ = viper.BindEnv(key)
	}

	var env Config
	if err := viper.Unmarshal(&env); err != nil {
		return nil, err
	}

	if env.OperatorWorkers < 1 {
		return nil, fmt.Errorf("OPERATOR_WORKERS must be at least 1, got %d", env.OperatorWorkers)
	}
	if env.TransitDelay < 0 || env.ConvertDelay < 0 || env.ArrivalDelay < 0 {
		return nil, fmt.Errorf("progression delays must not be negative")
	}

	return &env, nil
}
