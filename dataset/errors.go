package dataset

// PreprocessingError represents an error preparing a table for training
// or encoding it with the mapping of a trained dataset.
type PreprocessingError string

const (
	// ErrInvalidLabelColumn is returned when the label column is not part of the table.
	ErrInvalidLabelColumn = PreprocessingError("label column not found in table")
	// ErrMissingFeatureColumn is returned when a table to encode lacks one of the training features.
	ErrMissingFeatureColumn = PreprocessingError("feature column not found in table")
	// ErrNonNumericFeature is returned for feature columns whose values are not numbers.
	ErrNonNumericFeature = PreprocessingError("feature column is not numeric")
	// ErrMissingValue is returned when a feature value is missing or NaN.
	ErrMissingValue = PreprocessingError("feature column has missing values")
	// ErrUnknownCategory is returned when a table to encode has a label value unseen during training.
	ErrUnknownCategory = PreprocessingError("unknown label category")
	// ErrEmptyTable is returned when the table has no rows.
	ErrEmptyTable = PreprocessingError("table has no rows")
)

func (pe PreprocessingError) Error() string {
	return string(pe)
}
