package manpack

import "github.com/Kicer86/manpack/internal/codecerr"

// Sentinel errors returned by CompressImage and DecompressImage,
// re-exported from internal/codecerr so callers can use errors.Is
// without reaching into an internal package.
var (
	ErrUnsupportedWordSize = codecerr.ErrUnsupportedWordSize
	ErrTruncatedStream     = codecerr.ErrTruncatedStream
	ErrResidualData        = codecerr.ErrResidualData
	ErrPartialCode         = codecerr.ErrPartialCode
	ErrEmptyCodeSlot       = codecerr.ErrEmptyCodeSlot
	ErrMissingCode         = codecerr.ErrMissingCode
	ErrInvalidTree         = codecerr.ErrInvalidTree
)
