package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates configuration values.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Message: message})
}

// Validate validates the entire configuration and returns any errors.
func (v *Validator) Validate(cfg *Config) error {
	v.errors = make(ValidationErrors, 0)

	v.validateServerConfig(&cfg.Server)
	v.validateBatchConfig(&cfg.Batch)
	v.validateLoggingConfig(&cfg.Logging)

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

func (v *Validator) validateServerConfig(cfg *ServerConfig) {
	if cfg.Address == "" {
		v.addError("server.address", "address is required")
	} else if !isValidAddress(cfg.Address) {
		v.addError("server.address", "invalid address format, expected host:port or :port")
	}

	if cfg.ReadTimeout < 0 {
		v.addError("server.read_timeout", "must be non-negative")
	}
	if cfg.WriteTimeout < 0 {
		v.addError("server.write_timeout", "must be non-negative")
	}
	if cfg.MaxExpressionLength <= 0 {
		v.addError("server.max_expression_length", "must be positive")
	}
	if cfg.MaxBatchSize <= 0 {
		v.addError("server.max_batch_size", "must be positive")
	}
}

func (v *Validator) validateBatchConfig(cfg *BatchConfig) {
	if cfg.Workers <= 0 {
		v.addError("batch.workers", "must be positive")
	}
	if !isOneOf(cfg.Format, "text", "json", "yaml") {
		v.addError("batch.format", fmt.Sprintf("unsupported format %q, expected text, json or yaml", cfg.Format))
	}
}

func (v *Validator) validateLoggingConfig(cfg *LoggingConfig) {
	if !isOneOf(strings.ToLower(cfg.Level), "debug", "info", "warn", "warning", "error") {
		v.addError("logging.level", fmt.Sprintf("invalid level %q", cfg.Level))
	}
	if !isOneOf(cfg.Format, "json", "console") {
		v.addError("logging.format", fmt.Sprintf("invalid format %q", cfg.Format))
	}
	if !isOneOf(cfg.Output, "stdout", "stderr", "file", "both") {
		v.addError("logging.output", fmt.Sprintf("invalid output %q", cfg.Output))
	}
	if (cfg.Output == "file" || cfg.Output == "both") && cfg.FilePath == "" {
		v.addError("logging.file_path", "required when output is file or both")
	}
}

// Validate validates the configuration using a fresh Validator.
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

func isValidAddress(addr string) bool {
	_, port, err := net.SplitHostPort(addr)
	return err == nil && port != ""
}

func isOneOf(value string, options ...string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}
