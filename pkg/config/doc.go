// Package config loads typed configuration from environment variables.
//
// Values are parsed with github.com/caarlos0/env/v11 according to the
// struct tags of the target type. Before the first parse the default .env
// file in the working directory is loaded with github.com/joho/godotenv, if
// present; LoadEnv loads other files explicitly. Each configuration type is
// parsed once and served from a cache afterwards.
//
//	type ServiceConfig struct {
//	    Addr string      `env:"STRIKER_ADDR" envDefault:":8080"`
//	    Env  Environment `env:"STRIKER_ENV" envDefault:"development"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors wrap ErrParsingConfig or ErrNilPointer and can be matched with
// errors.Is. ResetCache clears the cache between tests.
package config
