package eoq

import (
	"fmt"
	"strings"
)

// InvalidParameterError reports input fields that violate their
// preconditions. No partial result accompanies it.
type InvalidParameterError struct {
	Fields []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter(s): %s", strings.Join(e.Fields, ", "))
}

// NumericDomainError reports a non-finite intermediate value. The whole
// computation is discarded rather than letting NaN/Inf propagate.
type NumericDomainError struct {
	Quantity string
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("non-finite value computing %s", e.Quantity)
}
