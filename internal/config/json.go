package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig in the shape of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Objects struct {
			Endpoint   string   `json:"endpoint"`
			Region     string   `json:"region"`
			Bucket     string   `json:"bucket"`
			AccessKey  string   `json:"access_key"`
			SecretKey  string   `json:"secret_key"`
			PublicURL  string   `json:"public_url"`
			PresignTTL Duration `json:"presign_ttl"`
		} `json:"objects,omitempty"`

		Cache struct {
			RedisURL string   `json:"redis_url"`
			FeedTTL  Duration `json:"feed_ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		SignInRate     float64  `json:"signin_rate"`
		SignInBurst    int      `json:"signin_burst"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	objects := jsonCfg.Storage.Objects
	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Objects: Objects{
				Endpoint:   objects.Endpoint,
				Region:     objects.Region,
				Bucket:     objects.Bucket,
				AccessKey:  objects.AccessKey,
				SecretKey:  objects.SecretKey,
				PublicURL:  objects.PublicURL,
				PresignTTL: time.Duration(objects.PresignTTL),
			},
			Cache: Cache{
				RedisURL: jsonCfg.Storage.Cache.RedisURL,
				FeedTTL:  time.Duration(jsonCfg.Storage.Cache.FeedTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			SignInRate:     jsonCfg.Server.SignInRate,
			SignInBurst:    jsonCfg.Server.SignInBurst,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
