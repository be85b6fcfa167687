package ports

import (
	"context"

	"go.trai.ch/lambdazip/internal/core/domain"
)

// DependencyCollector installs the third-party dependencies of a code file into a sandbox.
//
//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type DependencyCollector interface {
	// Collect locates the manifest next to code and, when present, installs its
	// dependencies into sb. A missing manifest is not an error.
	Collect(ctx context.Context, sb Sandbox, code string, settings domain.Settings) error
}
