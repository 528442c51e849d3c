// Package utils provides common utility functions for flint.
// It includes helper functions for scalar conversion shared by the ini
// value accessors and the entity construction code.
package utils
