package validators

import (
	"errors"

	"github.com/MKhiriev/go-pdf-desk/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyFileName    = errors.New("uploaded file has no name")

	ErrMergeNeedsTwoFiles = errors.New(app.MsgMergeNeedsTwoFiles)
	ErrSplitNeedsFile     = errors.New(app.MsgSplitNeedsFile)
	ErrCompressNeedsFile  = errors.New(app.MsgCompressNeedsFile)
	ErrConvertNeedsFile   = errors.New(app.MsgConvertNeedsFile)
)
