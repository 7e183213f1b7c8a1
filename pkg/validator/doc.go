// Package validator provides small composable validation rules that
// accumulate field-level errors instead of failing on the first violation.
//
// Rules are plain values combining a predicate with the error to report,
// executed together through Apply:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.ValidEmail("email", email),
//	)
//	if validator.IsValidationError(err) {
//	    // 400 Bad Request territory
//	}
//
// ValidationErrors implements the error interface so it travels through
// regular error returns; boundaries recover the structured form with
// ExtractValidationErrors.
package validator
