package report

import "errors"

var (
	ErrReportNotFound   = errors.New("report not found")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvalidStatus    = errors.New("status must be pending, reviewed or resolved")
)
