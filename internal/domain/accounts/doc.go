// Package accounts holds the user account model: logins, their roles, the
// password policy and the contracts of the services working on them.
package accounts
