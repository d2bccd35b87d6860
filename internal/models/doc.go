// Package models defines the core domain models for realwage.
//
// # Models
//
//   - CPIRecord: one year of the Consumer Price Index
//   - SalaryPoint: a salary observation entered by the user
//   - AdjustedSalary: one row of the computed salary series
//
// # Design Principles
//
//  1. **Plain values**: models carry no behaviour; the arithmetic lives in calculator
//  2. **Immutable CPI data**: CPIRecord slices are loaded once and never mutated
//  3. **Transient salaries**: SalaryPoint values arrive with each request and are not stored
//  4. **JSON-ready**: field tags match the HTTP API so the service layer can encode models directly
package models
