// Package config handles scenario tuning configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// Every value mirrors a tuning parameter of one of the generation tools; the
// defaults reproduce the values the complete scenario generator was tuned
// with, so running without a configuration file is always valid.
package config
