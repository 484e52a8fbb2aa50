package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Minio    MinioConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// MongoConfig carries the database and collection identifiers for the
// document store. Collections are configurable so staging environments can
// point the pipeline at isolated collections.
type MongoConfig struct {
	Host                  string
	Port                  string
	User                  string
	Password              string
	Database              string
	IdentityCollection    string
	ProfileCollection     string
	AppointmentCollection string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int

	// TTL for cached appointment documents.
	AppointmentTTL time.Duration
}

type MinioConfig struct {
	Host      string
	Port      string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	appointmentTTL, err := time.ParseDuration(viper.GetString("REDIS_APPOINTMENT_TTL"))
	if err != nil {
		appointmentTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Mongo: MongoConfig{
			Host:                  viper.GetString("MONGO_HOST"),
			Port:                  viper.GetString("MONGO_PORT"),
			User:                  viper.GetString("MONGO_USER"),
			Password:              viper.GetString("MONGO_PASSWORD"),
			Database:              viper.GetString("MONGO_DATABASE"),
			IdentityCollection:    viper.GetString("MONGO_IDENTITY_COLLECTION"),
			ProfileCollection:     viper.GetString("MONGO_PROFILE_COLLECTION"),
			AppointmentCollection: viper.GetString("MONGO_APPOINTMENT_COLLECTION"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetString("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			Name:     viper.GetString("POSTGRES_NAME"),
		},
		Redis: RedisConfig{
			Host:           viper.GetString("REDIS_HOST"),
			Port:           viper.GetString("REDIS_PORT"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			DB:             viper.GetInt("REDIS_DB"),
			AppointmentTTL: appointmentTTL,
		},
		Minio: MinioConfig{
			Host:      viper.GetString("MINIO_HOST"),
			Port:      viper.GetString("MINIO_PORT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
	}

	return config, nil
}
