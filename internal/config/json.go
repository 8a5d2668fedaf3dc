// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Account string `json:"account"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Crypto struct {
		KDFAlgorithm  string `json:"kdf_algorithm"`
		KDFIterations uint32 `json:"kdf_iterations"`
		KDFMemory     uint32 `json:"kdf_memory"`
		KDFThreads    uint8  `json:"kdf_threads"`
		CipherSuite   string `json:"cipher_suite"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Salt struct {
			FilePath string `json:"file"`
		} `json:"salt,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		DecryptConcurrency int `json:"decrypt_concurrency"`
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
			Account: jsonCfg.App.Account,
			LogFile: jsonCfg.App.LogFile,
		},
		Crypto: Crypto{
			KDFAlgorithm:  jsonCfg.Crypto.KDFAlgorithm,
			KDFIterations: jsonCfg.Crypto.KDFIterations,
			KDFMemory:     jsonCfg.Crypto.KDFMemory,
			KDFThreads:    jsonCfg.Crypto.KDFThreads,
			CipherSuite:   jsonCfg.Crypto.CipherSuite,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Salt: Salt{
				FilePath: jsonCfg.Storage.Salt.FilePath,
			},
		},
		Workers: Workers{
			DecryptConcurrency: jsonCfg.Workers.DecryptConcurrency,
		},
	}

	return cfg, nil
}
