// Package container provides dependency injection for the xmlcsv application.
// It creates and wires the logger, converter and report generator from the
// loaded configuration.
package container

import (
	"fmt"

	"xmlcsv/internal/config"
	"xmlcsv/internal/converter"
	"xmlcsv/internal/logging"
	"xmlcsv/internal/report"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	converter *converter.Converter
	reports   *report.Generator
}

// NewContainer creates and wires all application dependencies, logging
// through a logrus adapter configured from cfg.Log.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	reports, err := report.NewGenerator(cfg.Report.Format, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create report generator: %w", err)
	}

	logger.Debug("Container initialized",
		logging.Field{Key: "report_format", Value: cfg.Report.Format},
		logging.Field{Key: "input_directory", Value: cfg.Input.Directory})

	return &Container{
		logger:    logger,
		config:    cfg,
		converter: converter.NewConverter(logger),
		reports:   reports,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConverter returns the document converter.
func (c *Container) GetConverter() *converter.Converter {
	return c.converter
}

// GetReportGenerator returns the console report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}
