package util

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file when one exists. Missing files are
// fine in deployed environments where everything comes from the real env.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
