// Package liskvalidator validates Lisk codec schemas and the data encoded
// with them. It provides:
//
// - The dataType and fieldNumber schema keywords, bound into a JSON Schema engine
// - A stable error model (ErrorObject, ValidationError) with structured params
// - Human readable rendering of errors through FormatError
// - JSON and YAML schema loaders that reject duplicated object keys
//
// Typical usage:
//
//	c := liskvalidator.NewCompiler()
//	if err := c.AddSchema("/block/header", schema); err != nil {
//		return err
//	}
//	s, err := c.Compile("/block/header")
//	if err != nil {
//		return err
//	}
//	if err := s.Validate(data); err != nil {
//		ve, _ := liskvalidator.AsValidationError(err)
//		for _, e := range ve.Errors() {
//			fmt.Println(liskvalidator.FormatError(e))
//		}
//	}
//
// For one-off checks Validator compiles and caches schemas by "$id".
package liskvalidator
