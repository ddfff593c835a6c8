package compression

import "errors"

var (
	errAlreadyCompressed = errors.New("column already compressed")
	errNaN                = errors.New("NaN value in sortable column")
	errUnknownDataType    = errors.New("unknown data type")
	errColumnTypeCount    = errors.New("column_types length does not match chunk column count")
)
