// Package config provides configuration management for the preprocessor.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml in the working directory (or configs/config.yaml)
//	3. Built-in defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables are namespaced under UIDAI_*:
//
//	UIDAI_INPUT_DIR=./data
//	UIDAI_REPORT_OUTPUT_DIR=./out
//	UIDAI_REPORT_TOP_N=10
//	UIDAI_LOGGING_LEVEL=debug
//
// # Validation
//
// The merged configuration is validated with go-playground/validator struct
// tags before use; an invalid configuration fails the run with CONFIG_INVALID.
package config
