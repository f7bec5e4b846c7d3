package branchstatus

import (
	"errors"
	"fmt"
)

const (
	missingHeadMessageConstant     = "no current branch found"
	nonUTF8OutputMessageConstant   = "git produced output that is not valid UTF-8"
	lineParseErrorTemplateConstant = "unable to parse branch line %q"
)

// ErrMissingHead indicates that no line of the listing was marked as current.
var ErrMissingHead = errors.New(missingHeadMessageConstant)

// ErrNonUTF8Output indicates that the branch listing could not be decoded as UTF-8.
var ErrNonUTF8Output = errors.New(nonUTF8OutputMessageConstant)

// LineParseError reports a line that matches no recognized branch or head pattern.
type LineParseError struct {
	Line string
}

// Error includes the offending raw line.
func (parseError *LineParseError) Error() string {
	return fmt.Sprintf(lineParseErrorTemplateConstant, parseError.Line)
}
