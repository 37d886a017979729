// Package shapes implements validated geometric shapes and their area
// calculations.
//
// A Shape holds an ordered sequence of floating-point measurements that
// must pass shape-specific validation before they are accepted: a Circle
// carries a single radius, a Triangle carries three side lengths that
// satisfy the strict triangle inequality. Construction fails with a
// validation error when the measurements do not describe a real shape;
// after successful construction the measurements are immutable except
// through re-validating SetMeasurements.
//
// Arithmetic overflow is deliberately not an error: a Triangle with huge
// sides reports an area of +Inf, and its right-triangle classification
// degrades to TernaryUnknown when the squared sides overflow.
package shapes
