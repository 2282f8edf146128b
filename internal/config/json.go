// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		FreshnessTTL Duration `json:"freshness_ttl"`
		LaunchURL    string   `json:"launch_url"`
		InitDataEnv  string   `json:"init_data_env"`
		LogFile      string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL    string `json:"url"`
			Prefix string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		BreakerMaxFailures uint32   `json:"breaker_max_failures"`
		BreakerOpenTimeout Duration `json:"breaker_open_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			FreshnessTTL: time.Duration(jsonCfg.App.FreshnessTTL),
			LaunchURL:    jsonCfg.App.LaunchURL,
			InitDataEnv:  jsonCfg.App.InitDataEnv,
			LogFile:      jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL:    jsonCfg.Storage.Redis.URL,
				Prefix: jsonCfg.Storage.Redis.Prefix,
			},
		},
		Adapter: Adapter{
			HTTPAddress:        jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			BreakerMaxFailures: jsonCfg.Adapter.BreakerMaxFailures,
			BreakerOpenTimeout: time.Duration(jsonCfg.Adapter.BreakerOpenTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
