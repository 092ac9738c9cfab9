package registration

import "github.com/MichaelAJay/go-provider-registration/errors"

// Category classifies a registration failure for logging.
type Category string

const (
	CategoryGeneral                  Category = "general"
	CategoryInternal                 Category = "internal"
	CategoryNetwork                  Category = "network"
	CategoryInvalidAccountProperties Category = "invalid_account_properties"
	CategoryOther                    Category = "other"
)

// Classify maps a registration error to its category using the error code it carries.
// Errors without a registration code fall into CategoryOther.
func Classify(err error) Category {
	switch errors.GetErrorCode(err) {
	case errors.CodeGeneralError:
		return CategoryGeneral
	case errors.CodeInternalError:
		return CategoryInternal
	case errors.CodeNetworkFailure:
		return CategoryNetwork
	case errors.CodeInvalidAccountProperties:
		return CategoryInvalidAccountProperties
	default:
		return CategoryOther
	}
}

// Message returns the log message emitted for a failure of this category.
func (c Category) Message() string {
	switch c {
	case CategoryGeneral:
		return "Provider could not be registered due to the following general error"
	case CategoryInternal:
		return "Provider could not be registered due to the following internal error"
	case CategoryNetwork:
		return "Provider could not be registered due to a network failure"
	case CategoryInvalidAccountProperties:
		return "Provider could not be registered due to an invalid account property"
	default:
		return "Provider could not be registered"
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}
