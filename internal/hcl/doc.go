// Package hcl provides the concrete HCL implementation of the manifest
// loading interface defined in the manifest package. It is responsible for
// file parsing, HCL-to-model translation, and type-expression parsing.
package hcl
