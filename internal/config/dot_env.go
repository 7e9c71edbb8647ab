package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad loads the dotenv file if it exists. A missing file is fine,
// a malformed one is fatal.
func DotEnvTryLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) {
	err := DotEnvLoad(absolutePathToEnvFile, setEnvFn)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Panic().Err(err).Str("envFile", absolutePathToEnvFile).Msg(".env parse error!")
		}
		return
	}

	log.Debug().Str("envFile", absolutePathToEnvFile).Msg("Loaded env file")
}

// DotEnvLoad parses the dotenv file and calls setEnvFn for each variable.
func DotEnvLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) error {
	file, err := os.Open(absolutePathToEnvFile)
	if err != nil {
		return err
	}
	defer file.Close()

	envs, err := gotenv.StrictParse(file)
	if err != nil {
		return errors.Wrap(err, "failed to parse env file")
	}

	for key, value := range envs {
		if err := setEnvFn(key, value); err != nil {
			return errors.Wrapf(err, "failed to set env %s", key)
		}
	}

	return nil
}

// SetEnvIfUnset sets key only if it is not already present in the environment.
func SetEnvIfUnset(key string, value string) error {
	if _, ok := os.LookupEnv(key); ok {
		return nil
	}
	return os.Setenv(key, value)
}
