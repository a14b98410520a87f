// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the coverage table, calculator, survey runner
// and room selection, making the main package cleaner and more focused on CLI
// parsing and orchestration.
package application
