// Package payroll models monthly salaries of employees and the rules for
// uploading and presenting them.
package payroll
