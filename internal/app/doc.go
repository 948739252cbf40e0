// Package app implements the use cases of the account service on top of the
// domain contracts: self-service authentication, payroll, administration
// and the audit log.
package app
