package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, if one exists. Variables already set in the process
// environment win. It runs at most once and returns the loaded file, or ""
// when none was found.
func LoadEnv() (loaded string, err error) {
	once.Do(func() {
		loaded, err = loadEnvFile()
	})
	return loaded, err
}

func loadEnvFile() (string, error) {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return "", nil
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		return "", err
	}
	return envFile, nil
}
