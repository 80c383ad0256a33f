// Package schema infers a JSON Schema (Draft 7) from one or more decoded
// TOON values. Inference is purely structural: TOON carries no comments,
// so there is no annotation layer to merge on top of the inferred shape.
package schema
