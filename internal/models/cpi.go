package models

// CPIRecord is the Consumer Price Index value published for one year.
type CPIRecord struct {
	// Year is the calendar year the index applies to.
	Year int `json:"year"`

	// IndexValue is the annual average index (ONS D7BT, 2015=100).
	// Must be strictly positive; a zero index makes every ratio undefined.
	IndexValue float64 `json:"index_value"`
}
