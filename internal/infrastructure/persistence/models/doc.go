// Package models contains the GORM database models. Each model converts
// from and to its domain entity so that GORM tags stay out of the domain.
package models
