package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for structured logging across wcsro.
const (
	// Identity and context
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldConfig    = "config"

	// Structure
	FieldLattice = "lattice"
	FieldAtoms   = "atoms"
	FieldSpecies = "species"

	// Computation
	FieldShell     = "shell"
	FieldMinCutoff = "min_cutoff"
	FieldMaxCutoff = "max_cutoff"
	FieldWorkers   = "workers"
	FieldPairs     = "pairs"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

type contextKey string

const (
	runIDKey     contextKey = "logger_run_id"
	componentKey contextKey = "logger_component"
)

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context as key-value pairs
// suitable for Infow/Errorw.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns the global logger with the context fields attached.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("sro")
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
