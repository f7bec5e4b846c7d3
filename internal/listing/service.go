package listing

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/gone/internal/branchstatus"
)

const (
	repositoryReaderMissingMessageConstant = "repository reader not configured"
	outputWriterMissingMessageConstant     = "listing output writer not configured"
	readRepositoryErrorTemplateConstant    = "unable to read branches: %w"
	listingCompletedMessageConstant        = "Listed branches"
	logFieldRepositoryPathConstant         = "repository_path"
	logFieldFilterConstant                 = "filter"
	logFieldFormatConstant                 = "format"
	logFieldSectionCountConstant           = "sections"
)

// ErrRepositoryReaderNotConfigured indicates the service was constructed without a reader.
var ErrRepositoryReaderNotConfigured = errors.New(repositoryReaderMissingMessageConstant)

// ErrOutputWriterNotConfigured indicates the service was constructed without an output writer.
var ErrOutputWriterNotConfigured = errors.New(outputWriterMissingMessageConstant)

// RepositoryReader loads the parsed branch state of a repository.
type RepositoryReader interface {
	ReadRepository(executionContext context.Context, repositoryPath string) (branchstatus.Repository, error)
}

// Options configures a single listing.
type Options struct {
	RepositoryPath string
	Filter         Filter
	Format         Format
}

// Service reads a repository and writes its filtered branch listing.
type Service struct {
	logger *zap.Logger
	reader RepositoryReader
	output io.Writer
}

// NewService validates collaborators and constructs a Service. A nil logger is replaced by a no-op logger.
func NewService(logger *zap.Logger, reader RepositoryReader, output io.Writer) (*Service, error) {
	if reader == nil {
		return nil, ErrRepositoryReaderNotConfigured
	}
	if output == nil {
		return nil, ErrOutputWriterNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, reader: reader, output: output}, nil
}

// List reads the repository and renders the report. Nothing is written when
// reading or parsing fails.
func (service *Service) List(executionContext context.Context, options Options) (Report, error) {
	filter, filterError := ParseFilter(string(options.Filter))
	if filterError != nil {
		return Report{}, filterError
	}
	format, formatError := ParseFormat(string(options.Format))
	if formatError != nil {
		return Report{}, formatError
	}
	renderer, rendererError := NewRenderer(format)
	if rendererError != nil {
		return Report{}, rendererError
	}

	repository, readError := service.reader.ReadRepository(executionContext, options.RepositoryPath)
	if readError != nil {
		return Report{}, fmt.Errorf(readRepositoryErrorTemplateConstant, readError)
	}

	report := BuildReport(options.RepositoryPath, repository, filter)
	if renderError := renderer.Render(service.output, report); renderError != nil {
		return Report{}, renderError
	}

	service.logger.Debug(listingCompletedMessageConstant,
		zap.String(logFieldRepositoryPathConstant, options.RepositoryPath),
		zap.String(logFieldFilterConstant, string(filter)),
		zap.String(logFieldFormatConstant, string(format)),
		zap.Int(logFieldSectionCountConstant, len(report.Sections)),
	)
	return report, nil
}
